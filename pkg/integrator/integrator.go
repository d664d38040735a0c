package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrUnknownMode is returned when a shading mode name is not recognized
var ErrUnknownMode = errors.New("unknown shading mode")

// AmbientCoefficient scales albedo into the constant ambient term
const AmbientCoefficient = 0.1

// Integrator defines the interface for shading algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray with depth bounces remaining
	RayColor(ray core.Ray, scene *scene.Scene, depth int) core.Vec3
}

// Mode selects which integrator the sampler invokes for each camera ray
type Mode string

const (
	ModeNormals Mode = "normals" // Flat normal visualization, no lights
	ModeShadows Mode = "shadows" // Flat ambient + shadowed diffuse
	ModeWhitted Mode = "whitted" // Recursive reflection, refraction and specular
)

// Modes lists every supported mode
var Modes = []Mode{ModeNormals, ModeShadows, ModeWhitted}

// ParseMode converts a mode name into a Mode
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Bias holds the ray interval and self-intersection offsets.
// These values are tuned for scenes of roughly unit scale; they are not physical constants.
type Bias struct {
	TMin          float64 // Lower bound for primary and secondary ray hits
	TMax          float64 // Upper bound for primary and secondary ray hits
	ShadowBias    float64 // Offset along the normal for shadow ray origins
	ShadowTMin    float64 // Lower bound for shadow ray hits
	RecursionBias float64 // Offset along ±normal for reflected and refracted ray origins
}

// DefaultBias returns the offsets used by the built-in scenes
func DefaultBias() Bias {
	return Bias{
		TMin:          1e-3,
		TMax:          math.Inf(1),
		ShadowBias:    1e-4,
		ShadowTMin:    1e-4,
		RecursionBias: 1e-4,
	}
}

// WithDefaults returns b with every zero field replaced by its DefaultBias value
func (b Bias) WithDefaults() Bias {
	d := DefaultBias()
	if b.TMin == 0 {
		b.TMin = d.TMin
	}
	if b.TMax == 0 {
		b.TMax = d.TMax
	}
	if b.ShadowBias == 0 {
		b.ShadowBias = d.ShadowBias
	}
	if b.ShadowTMin == 0 {
		b.ShadowTMin = d.ShadowTMin
	}
	if b.RecursionBias == 0 {
		b.RecursionBias = d.RecursionBias
	}
	return b
}

// Validate checks that every offset is non-negative and the ray interval is not empty
func (b Bias) Validate() error {
	switch {
	case !(b.TMin >= 0) || !(b.ShadowBias >= 0) || !(b.ShadowTMin >= 0) || !(b.RecursionBias >= 0):
		return fmt.Errorf("ray offsets must be non-negative, got %+v", b)
	case !(b.TMax > b.TMin):
		return fmt.Errorf("ray interval (%g, %g) is empty", b.TMin, b.TMax)
	}
	return nil
}

// New creates the integrator for the given mode
func New(mode Mode, bias Bias) (Integrator, error) {
	switch mode {
	case ModeNormals:
		return NewNormalsIntegrator(bias), nil
	case ModeShadows:
		return NewShadowsIntegrator(bias), nil
	case ModeWhitted:
		return NewWhittedIntegrator(bias), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
