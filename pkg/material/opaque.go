package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Opaque is a lit surface: ambient + diffuse + Blinn specular, optionally mirroring
// a fraction of the incoming light.
type Opaque struct {
	Albedo       core.Vec3
	DiffuseK     float64 // Diffuse weight, >= 0
	SpecularK    float64 // Specular weight, >= 0
	Shininess    float64 // Specular exponent, > 0
	Reflectivity float64 // Mirror fraction in [0, 1]
}

// NewLambertian creates a purely diffuse opaque material
func NewLambertian(albedo core.Vec3) *Opaque {
	return &Opaque{
		Albedo:    albedo,
		DiffuseK:  1.0,
		SpecularK: 0.0,
		Shininess: 1.0,
	}
}

// NewPlastic creates a diffuse material with a specular highlight
func NewPlastic(albedo core.Vec3, specularK, shininess float64) *Opaque {
	return &Opaque{
		Albedo:    albedo,
		DiffuseK:  1.0,
		SpecularK: specularK,
		Shininess: shininess,
	}
}

// NewMirror creates a highly reflective material tinted by albedo.
// Reflectivity is taken as given; Validate rejects values outside [0, 1].
func NewMirror(albedo core.Vec3, reflectivity float64) *Opaque {
	return &Opaque{
		Albedo:       albedo,
		DiffuseK:     0.5,
		SpecularK:    1.0,
		Shininess:    128,
		Reflectivity: reflectivity,
	}
}

// GetAlbedo implements Material
func (o *Opaque) GetAlbedo() core.Vec3 { return o.Albedo }

// Validate implements Material
func (o *Opaque) Validate() error {
	switch {
	case o.DiffuseK < 0:
		return fmt.Errorf("%w: diffuse weight must be non-negative, got %g", ErrInvalidMaterial, o.DiffuseK)
	case o.SpecularK < 0:
		return fmt.Errorf("%w: specular weight must be non-negative, got %g", ErrInvalidMaterial, o.SpecularK)
	case !(o.Shininess > 0):
		return fmt.Errorf("%w: shininess must be positive, got %g", ErrInvalidMaterial, o.Shininess)
	case !(o.Reflectivity >= 0 && o.Reflectivity <= 1):
		return fmt.Errorf("%w: reflectivity must be in [0, 1], got %g", ErrInvalidMaterial, o.Reflectivity)
	}
	return nil
}

func (o *Opaque) isMaterial() {}
