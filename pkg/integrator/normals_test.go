package integrator

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestNormalsIntegrator(t *testing.T) {
	sc := createSphereScene(material.NewDielectric(1.5))
	n := NewNormalsIntegrator(DefaultBias())

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Vec3
	}{
		{"apex faces camera", forwardRay(), core.NewVec3(0.5, 0.5, 1.0)},
		{"top of sphere", core.NewRay(core.NewVec3(0, 2, -1), core.NewVec3(0, -1, 0)), core.NewVec3(0.5, 1.0, 0.5)},
		{"from inside the sphere", core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0)), core.NewVec3(0.0, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColor(t, tt.expected, n.RayColor(tt.ray, sc, 0))
		})
	}
}

func TestNormalsIntegrator_Miss(t *testing.T) {
	sc := scene.New()
	n := NewNormalsIntegrator(DefaultBias())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 1))
	assertColor(t, sc.Background.Color(ray.Direction), n.RayColor(ray, sc, 5))
}
