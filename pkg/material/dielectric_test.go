package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestReflectance_Schlick(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence air to glass", 1.0, 1.0 / 1.5, 0.04},
		{"normal incidence glass to air", 1.0, 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched indices", 0.5, 1.0, math.Pow(0.5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	incoming := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	reflected := Reflect(incoming, normal)
	expected := core.NewVec3(1, 1, 0).Normalize()
	if reflected.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflected direction %v, got %v", expected, reflected)
	}
}

func TestRefract(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		dir, ok := Refract(core.NewVec3(0, -1, 0), normal, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction at normal incidence")
		}
		if dir.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
			t.Errorf("Expected straight transmission, got %v", dir)
		}
	})

	t.Run("entering glass bends toward the normal", func(t *testing.T) {
		incoming := core.NewVec3(1, -1, 0).Normalize()
		dir, ok := Refract(incoming, normal, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction entering glass")
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Errorf("Refracted direction should be unit length, got %f", dir.Length())
		}
		// Snell: sin(theta_t) = sin(45°) / 1.5
		expectedSin := math.Sin(math.Pi/4) / 1.5
		if math.Abs(dir.X-expectedSin) > 1e-9 {
			t.Errorf("Expected sin(theta_t)=%f, got %f", expectedSin, dir.X)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		incoming := core.NewVec3(1, -1, 0).Normalize()
		if _, ok := Refract(incoming, normal, 1.5); ok {
			t.Error("Expected total internal reflection leaving glass at 45 degrees")
		}
	})
}

func TestDielectric_Indices(t *testing.T) {
	glass := NewDielectric(1.5)

	etaI, etaT := glass.Indices(true)
	if etaI != 1.0 || etaT != 1.5 {
		t.Errorf("Front face: expected (1.0, 1.5), got (%f, %f)", etaI, etaT)
	}

	etaI, etaT = glass.Indices(false)
	if etaI != 1.5 || etaT != 1.0 {
		t.Errorf("Back face: expected (1.5, 1.0), got (%f, %f)", etaI, etaT)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mat     Material
		wantErr bool
	}{
		{"lambertian", NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"plastic", NewPlastic(core.NewVec3(0.8, 0.1, 0.1), 0.5, 32), false},
		{"mirror", NewMirror(core.NewVec3(0.9, 0.9, 0.9), 0.8), false},
		{"glass", NewDielectric(1.5), false},
		{"negative diffuse", &Opaque{DiffuseK: -1, Shininess: 1}, true},
		{"negative specular", &Opaque{SpecularK: -0.1, Shininess: 1}, true},
		{"zero shininess", &Opaque{DiffuseK: 1}, true},
		{"reflectivity above one", &Opaque{Shininess: 1, Reflectivity: 1.5}, true},
		{"zero refractive index", NewDielectric(0), true},
		{"NaN refractive index", NewDielectric(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mat.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMaterial) {
					t.Errorf("Expected ErrInvalidMaterial, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNewMirror_RejectsOutOfRangeReflectivity(t *testing.T) {
	for _, reflectivity := range []float64{2.0, -0.5, math.NaN()} {
		mirror := NewMirror(core.Splat(1), reflectivity)
		if err := mirror.Validate(); !errors.Is(err, ErrInvalidMaterial) {
			t.Errorf("Reflectivity %g: expected ErrInvalidMaterial, got %v", reflectivity, err)
		}
	}
	if got := NewMirror(core.Splat(1), 0.8).Reflectivity; got != 0.8 {
		t.Errorf("Expected reflectivity 0.8, got %f", got)
	}
}
