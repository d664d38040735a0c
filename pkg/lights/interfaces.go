package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for sources that can be sampled for direct lighting
type Light interface {
	Type() LightType

	// Sample samples light toward a specific point for direct lighting.
	// The returned direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point       core.Vec3 // Point on the light source
	Direction   core.Vec3 // Unit direction from shading point to light
	Distance    float64   // Distance to light
	Attenuation float64   // Distance falloff factor in [0, 1]
	Emission    core.Vec3 // Light intensity after attenuation
}
