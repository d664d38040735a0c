package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ambient returns the constant ambient term for a surface color
func ambient(albedo core.Vec3) core.Vec3 {
	return albedo.Multiply(AmbientCoefficient)
}

// visibleLights samples every light toward the hit point and drops the occluded ones.
// Shadowing is binary: any shape between the biased hit point and the light blocks it.
func visibleLights(sc *scene.Scene, hit geometry.HitRecord, bias Bias) []lights.LightSample {
	var visible []lights.LightSample
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(bias.ShadowBias))

	for _, light := range sc.Lights {
		sample := light.Sample(hit.Point)
		shadowRay := core.NewRay(shadowOrigin, sample.Direction)
		if geometry.Occluded(sc.Shapes, shadowRay, bias.ShadowTMin, sample.Distance) {
			continue
		}
		visible = append(visible, sample)
	}

	return visible
}
