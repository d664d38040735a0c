package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewNormalsScene creates the classic two-sphere scene: a small sphere resting on
// a huge ground sphere, meant to be viewed with normal visualization.
func NewNormalsScene() *Scene {
	s := New()
	s.Defaults = RenderDefaults{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        Depth(1),
		Mode:            "normals",
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}

// NewShadowsScene creates diffuse spheres lit by two point lights, with a small
// sphere floating between the key light and the ground to cast a hard shadow.
func NewShadowsScene() *Scene {
	s := New()
	s.Defaults = RenderDefaults{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        Depth(1),
		Mode:            "shadows",
	}

	red := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.4, 0.9))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, red)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0.9, 0.4, -0.6), 0.15, blue)

	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(2, 2, 0), core.NewVec3(1.0, 1.0, 1.0), 1.0, 0.09, 0.032))
	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(-3, 1, 0.5), core.NewVec3(0.3, 0.3, 0.5), 1.0, 0.14, 0.07))

	return s
}

// NewWhittedScene creates a scene exercising every branch of the recursive shader:
// a diffuse center sphere, a mirror, a glass sphere and a shiny ground.
func NewWhittedScene() *Scene {
	s := New()
	s.Defaults = RenderDefaults{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        Depth(5),
		Mode:            "whitted",
	}

	center := material.NewPlastic(core.NewVec3(0.1, 0.2, 0.5), 0.5, 32)
	ground := &material.Opaque{
		Albedo:       core.NewVec3(0.8, 0.8, 0.0),
		DiffuseK:     1.0,
		SpecularK:    0.2,
		Shininess:    8,
		Reflectivity: 0.15,
	}
	mirror := material.NewMirror(core.NewVec3(0.8, 0.6, 0.2), 0.8)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, mirror)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)

	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(2, 3, 1), core.NewVec3(1.0, 1.0, 1.0), 1.0, 0.045, 0.0075))
	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(-2, 2, 0.5), core.NewVec3(0.4, 0.4, 0.6), 1.0, 0.09, 0.032))

	return s
}
