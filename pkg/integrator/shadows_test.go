package integrator

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// createGroundScene creates a ground whose top touches the origin, lit from straight above.
// The test ray from downRay hits (0,0,0) with normal (0,1,0).
func createGroundScene(albedo core.Vec3, light *lights.PointLight) *scene.Scene {
	sc := scene.New()
	sc.AddSphere(core.NewVec3(0, -100, 0), 100, material.NewLambertian(albedo))
	sc.AddPointLight(light)
	return sc
}

func downRay() core.Ray {
	return core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
}

func TestShadowsIntegrator_MissReturnsBackground(t *testing.T) {
	sc := scene.New()
	s := NewShadowsIntegrator(DefaultBias())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.4, -1))
	assertColor(t, sc.Background.Color(ray.Direction), s.RayColor(ray, sc, 0))
}

func TestShadowsIntegrator_UnoccludedDiffuse(t *testing.T) {
	albedo := core.Splat(0.5)
	sc := createGroundScene(albedo, lights.NewPointLight(core.NewVec3(0, 5, 0), core.Splat(1)))
	s := NewShadowsIntegrator(DefaultBias())

	// ambient 0.05 + diffuse 0.5 * 1 * cos(0) * attenuation 1
	assertColor(t, core.Splat(0.55), s.RayColor(downRay(), sc, 1))
}

func TestShadowDeterminism(t *testing.T) {
	albedo := core.Splat(0.5)
	occluder := material.NewLambertian(core.Splat(0.9))

	integrators := map[string]Integrator{
		"shadows": NewShadowsIntegrator(DefaultBias()),
		"whitted": NewWhittedIntegrator(DefaultBias()),
	}

	for name, integ := range integrators {
		t.Run(name, func(t *testing.T) {
			light := lights.NewPointLight(core.NewVec3(0, 5, 0), core.Splat(1))

			lit := createGroundScene(albedo, light)
			litColor := integ.RayColor(downRay(), lit, 3)

			shadowed := createGroundScene(albedo, light)
			// Between the surface point and the light, but above the test ray's origin
			shadowed.AddSphere(core.NewVec3(0, 3, 0), 0.5, occluder)
			shadowedColor := integ.RayColor(downRay(), shadowed, 3)

			ambientColor := albedo.Multiply(AmbientCoefficient)
			assertColor(t, ambientColor, shadowedColor)

			if litColor.X <= ambientColor.X || litColor.Y <= ambientColor.Y || litColor.Z <= ambientColor.Z {
				t.Errorf("Removing the occluder should restore a positive contribution: lit %v, ambient %v", litColor, ambientColor)
			}
		})
	}
}

func TestShadows_OccluderBeyondLightDoesNotShadow(t *testing.T) {
	albedo := core.Splat(0.5)
	sc := createGroundScene(albedo, lights.NewPointLight(core.NewVec3(0, 2, 0), core.Splat(1)))
	sc.AddSphere(core.NewVec3(0, 4, 0), 0.5, material.NewLambertian(core.Splat(0.9)))
	s := NewShadowsIntegrator(DefaultBias())

	assertColor(t, core.Splat(0.55), s.RayColor(downRay(), sc, 1))
}

func TestEnergy_MonotonicInIntensity(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.5, 0.3)
	integrators := []Integrator{NewShadowsIntegrator(DefaultBias()), NewWhittedIntegrator(DefaultBias())}

	for _, integ := range integrators {
		prev := core.Vec3{}
		for intensity := 0.0; intensity <= 2.0; intensity += 0.1 {
			light := lights.NewAttenuatedPointLight(core.NewVec3(1, 4, 0), core.Splat(intensity), 1, 0.09, 0.032)
			color := integ.RayColor(downRay(), createGroundScene(albedo, light), 1)
			if color.X < prev.X || color.Y < prev.Y || color.Z < prev.Z {
				t.Fatalf("%T: color decreased from %v to %v at intensity %f", integ, prev, color, intensity)
			}
			prev = color
		}
	}
}

func TestEnergy_MonotonicInDistance(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.5, 0.3)
	integrators := []Integrator{NewShadowsIntegrator(DefaultBias()), NewWhittedIntegrator(DefaultBias())}

	for _, integ := range integrators {
		prev := core.Splat(2)
		for height := 1.0; height <= 30.0; height += 1.0 {
			light := lights.NewAttenuatedPointLight(core.NewVec3(0, height, 0), core.Splat(1), 1, 0.09, 0.032)
			color := integ.RayColor(downRay(), createGroundScene(albedo, light), 1)
			if color.X > prev.X || color.Y > prev.Y || color.Z > prev.Z {
				t.Fatalf("%T: color increased from %v to %v at distance %f", integ, prev, color, height)
			}
			prev = color
		}
	}
}
