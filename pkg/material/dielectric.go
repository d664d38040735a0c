package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that both reflects and refracts.
// Surfaces with this material receive no local illumination.
type Dielectric struct {
	Albedo          core.Vec3 // Tint applied to transmitted light
	RefractiveIndex float64   // Index of refraction relative to vacuum (e.g., 1.5 for glass)
}

// NewDielectric creates a new clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: core.Splat(1), RefractiveIndex: refractiveIndex}
}

// NewTintedDielectric creates a dielectric that tints transmitted light
func NewTintedDielectric(albedo core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// GetAlbedo implements Material
func (d *Dielectric) GetAlbedo() core.Vec3 { return d.Albedo }

// Validate implements Material
func (d *Dielectric) Validate() error {
	if !(d.RefractiveIndex > 0) {
		return fmt.Errorf("%w: refractive index must be positive, got %g", ErrInvalidMaterial, d.RefractiveIndex)
	}
	return nil
}

func (d *Dielectric) isMaterial() {}

// Indices returns the incident and transmitted refractive indices for a hit.
// A front-face hit enters the material from vacuum; a back-face hit exits it.
func (d *Dielectric) Indices(frontFace bool) (etaI, etaT float64) {
	if frontFace {
		return 1.0, d.RefractiveIndex
	}
	return d.RefractiveIndex, 1.0
}

// Reflect calculates the mirror reflection of v about the normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n using
// Snell's law, where eta is the ratio of incident over transmitted index.
// It returns false on total internal reflection.
func Refract(uv, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosI := math.Max(-1, math.Min(1, -uv.Dot(n)))
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return uv.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (refractionRatio - 1) / (refractionRatio + 1)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
