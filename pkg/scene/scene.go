package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidScene is returned when a scene fails validation
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering.
// It is read-only for the duration of a render.
type Scene struct {
	Shapes     []geometry.Shape // Objects in the scene, in intersection order
	Lights     []lights.Light   // Lights in the scene
	Background Background       // Color returned for rays that escape
	Defaults   RenderDefaults   // Recommended render settings
}

// RenderDefaults are the render settings a scene was tuned for
type RenderDefaults struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        *int   // nil leaves the renderer default; 0 is a valid limit
	Mode            string // "normals", "shadows" or "whitted"
}

// Depth returns a pointer to n for use as RenderDefaults.MaxDepth
func Depth(n int) *int {
	return &n
}

// Background is a vertical gradient from Bottom (straight down) to Top (straight up)
type Background struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns a gradient color based on ray direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}

// New creates an empty scene with the default background
func New() *Scene {
	return &Scene{
		Shapes:     make([]geometry.Shape, 0),
		Lights:     make([]lights.Light, 0),
		Background: DefaultBackground(),
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddPointLight appends a point light to the scene
func (s *Scene) AddPointLight(light *lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Validate checks every shape and light in the scene
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if !(sphere.Radius > 0) {
			return fmt.Errorf("%w: sphere %d has non-positive radius %g", ErrInvalidScene, i, sphere.Radius)
		}
		if sphere.Material == nil {
			return fmt.Errorf("%w: sphere %d has no material", ErrInvalidScene, i)
		}
		if err := sphere.Material.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %w", ErrInvalidScene, i, err)
		}
	}

	for i, light := range s.Lights {
		validator, ok := light.(interface{ Validate() error })
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("%w: light %d: %w", ErrInvalidScene, i, err)
		}
	}

	return nil
}
