package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
	return rgb.Clamp(0, 1)
}

const (
	gridColumns = 7
	gridRows    = 3
	gridRadius  = 0.3
	gridSpacing = 0.8
)

// NewSphereGridScene creates rows of small spheres receding from the camera.
// Hue sweeps across columns; rows alternate plastic, mirror and glass.
func NewSphereGridScene() *Scene {
	s := New()
	s.Defaults = RenderDefaults{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        Depth(6),
		Mode:            "whitted",
	}

	s.AddSphere(core.NewVec3(0, -100.5, -3), 100, &material.Opaque{
		Albedo:       core.NewVec3(0.6, 0.6, 0.6),
		DiffuseK:     1.0,
		SpecularK:    0.1,
		Shininess:    4,
		Reflectivity: 0.1,
	})

	for row := 0; row < gridRows; row++ {
		z := -2.0 - float64(row)
		for col := 0; col < gridColumns; col++ {
			x := (float64(col) - float64(gridColumns-1)/2) * gridSpacing
			hue := float64(col) * 360.0 / gridColumns
			albedo := oklchToRGB(0.7, 0.15, hue)

			var mat material.Material
			switch row % 3 {
			case 0:
				mat = material.NewPlastic(albedo, 0.6, 64)
			case 1:
				mat = material.NewMirror(albedo, 0.7)
			default:
				mat = material.NewTintedDielectric(albedo.Lerp(core.Splat(1), 0.5), 1.5)
			}
			s.AddSphere(core.NewVec3(x, gridRadius-0.5, z), gridRadius, mat)
		}
	}

	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(0, 4, 0), core.NewVec3(1.0, 1.0, 1.0), 1.0, 0.022, 0.0019))
	s.AddPointLight(lights.NewAttenuatedPointLight(
		core.NewVec3(-4, 2, -1), core.NewVec3(0.3, 0.3, 0.4), 1.0, 0.07, 0.017))

	return s
}
