package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera looking down -z.
// Zero fields are filled in by NewCamera.
type CameraConfig struct {
	Origin         core.Vec3
	ViewportHeight float64 // Height of the viewport in world units (default 2)
	AspectRatio    float64 // Viewport width over height (default 16:9)
	FocalLength    float64 // Distance from origin to viewport (default 1)
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera
func NewCamera(config CameraConfig) *Camera {
	viewportHeight := config.ViewportHeight
	if viewportHeight <= 0 {
		viewportHeight = 2.0
	}
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}
	focalLength := config.FocalLength
	if focalLength <= 0 {
		focalLength = 1.0
	}
	viewportWidth := aspectRatio * viewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// t = 0 is the bottom edge of the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
