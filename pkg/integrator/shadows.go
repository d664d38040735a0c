package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ShadowsIntegrator shades the nearest hit with ambient plus shadow-tested diffuse light.
// It ignores specular, reflection and transparency.
type ShadowsIntegrator struct {
	bias Bias
}

// NewShadowsIntegrator creates a new flat shadowed-diffuse integrator
func NewShadowsIntegrator(bias Bias) *ShadowsIntegrator {
	return &ShadowsIntegrator{bias: bias}
}

// RayColor implements Integrator. depth is ignored; this mode never recurses.
func (s *ShadowsIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Vec3 {
	hit, isHit := geometry.FindNearestHit(sc.Shapes, ray, s.bias.TMin, s.bias.TMax)
	if !isHit {
		return sc.Background.Color(ray.Direction)
	}

	albedo := hit.Material.GetAlbedo()
	color := ambient(albedo)

	for _, sample := range visibleLights(sc, hit, s.bias) {
		cosine := max(0, hit.Normal.Dot(sample.Direction))
		color = color.Add(albedo.MultiplyVec(sample.Emission).Multiply(cosine))
	}

	return color.Clamp(0, 1)
}
