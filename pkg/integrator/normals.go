package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// NormalsIntegrator maps the surface normal of the nearest hit to a color
type NormalsIntegrator struct {
	bias Bias
}

// NewNormalsIntegrator creates a new normal visualization integrator
func NewNormalsIntegrator(bias Bias) *NormalsIntegrator {
	return &NormalsIntegrator{bias: bias}
}

// RayColor implements Integrator. depth is ignored; this mode never recurses.
func (n *NormalsIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Vec3 {
	hit, isHit := geometry.FindNearestHit(sc.Shapes, ray, n.bias.TMin, n.bias.TMax)
	if !isHit {
		return sc.Background.Color(ray.Direction)
	}
	return hit.Normal.Add(core.Splat(1)).Multiply(0.5)
}
