package lights

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrDegenerateLight is returned when a light's attenuation coefficients are all zero
var ErrDegenerateLight = errors.New("degenerate light")

// PointLight is an isotropic point source with constant/linear/quadratic falloff.
//
// The attenuation denominator AttC + AttL·d + AttQ·d² must be positive for every
// distance the light can reach; Validate only rejects the all-zero case.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3 // Light color/radiance
	AttC      float64   // Constant attenuation coefficient
	AttL      float64   // Linear attenuation coefficient
	AttQ      float64   // Quadratic attenuation coefficient
}

// NewPointLight creates a point light with no distance falloff
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
		AttC:      1.0,
	}
}

// NewAttenuatedPointLight creates a point light with explicit attenuation coefficients
func NewAttenuatedPointLight(position, intensity core.Vec3, attC, attL, attQ float64) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
		AttC:      attC,
		AttL:      attL,
		AttQ:      attQ,
	}
}

// Type implements Light
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Attenuation returns clamp(1 / (c + l·d + q·d²), 0, 1)
func (pl *PointLight) Attenuation(distance float64) float64 {
	denom := pl.AttC + pl.AttL*distance + pl.AttQ*distance*distance
	return max(0, min(1, 1/denom))
}

// Sample implements Light
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	attenuation := pl.Attenuation(distance)

	return LightSample{
		Point:       pl.Position,
		Direction:   toLight.Normalize(),
		Distance:    distance,
		Attenuation: attenuation,
		Emission:    pl.Intensity.Multiply(attenuation),
	}
}

// Validate checks the light parameters
func (pl *PointLight) Validate() error {
	if pl.AttC < 0 || pl.AttL < 0 || pl.AttQ < 0 {
		return fmt.Errorf("%w: attenuation coefficients must be non-negative, got (%g, %g, %g)",
			ErrDegenerateLight, pl.AttC, pl.AttL, pl.AttQ)
	}
	if pl.AttC == 0 && pl.AttL == 0 && pl.AttQ == 0 {
		return fmt.Errorf("%w: attenuation coefficients are all zero", ErrDegenerateLight)
	}
	if pl.Intensity.X < 0 || pl.Intensity.Y < 0 || pl.Intensity.Z < 0 {
		return fmt.Errorf("%w: intensity must be non-negative, got %v", ErrDegenerateLight, pl.Intensity)
	}
	return nil
}
