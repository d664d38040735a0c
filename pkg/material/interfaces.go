package material

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate when a material parameter is out of range
var ErrInvalidMaterial = errors.New("invalid material")

// Material is a closed set of surface models: *Opaque or *Dielectric.
// The shading engine selects its illumination model with a type switch.
type Material interface {
	// GetAlbedo returns the base color of the surface
	GetAlbedo() core.Vec3

	// Validate checks the material parameters
	Validate() error

	isMaterial()
}
