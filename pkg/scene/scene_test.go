package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestBackground_Color(t *testing.T) {
	bg := DefaultBackground()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -5, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.Color(tt.direction)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBuiltinScenes_Validate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", name, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q should be valid: %v", name, err)
			}
			if len(s.Shapes) == 0 {
				t.Errorf("Built-in scene %q has no shapes", name)
			}
			if s.Defaults.Width <= 0 || s.Defaults.Height <= 0 {
				t.Errorf("Built-in scene %q has invalid default size %dx%d", name, s.Defaults.Width, s.Defaults.Height)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	s, err := Lookup("nonexistent")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if s != nil {
		t.Errorf("Expected nil scene, got %v", s)
	}
}

func TestList_MatchesNames(t *testing.T) {
	infos := List()
	names := Names()
	if len(infos) != len(names) {
		t.Fatalf("Expected %d scene infos, got %d", len(names), len(infos))
	}
	for i, info := range infos {
		if info.Name != names[i] {
			t.Errorf("Expected scene %q at index %d, got %q", names[i], i, info.Name)
		}
		if info.Mode == "" {
			t.Errorf("Scene %q has no mode", info.Name)
		}
	}
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *Scene)
	}{
		{"zero radius", func(s *Scene) {
			s.AddSphere(core.Vec3{}, 0, material.NewLambertian(core.Splat(0.5)))
		}},
		{"NaN radius", func(s *Scene) {
			s.AddSphere(core.Vec3{}, math.NaN(), material.NewLambertian(core.Splat(0.5)))
		}},
		{"missing material", func(s *Scene) {
			s.AddSphere(core.Vec3{}, 1, nil)
		}},
		{"bad material", func(s *Scene) {
			s.AddSphere(core.Vec3{}, 1, material.NewDielectric(-1))
		}},
		{"degenerate light", func(s *Scene) {
			s.AddPointLight(lights.NewAttenuatedPointLight(core.Vec3{}, core.Splat(1), 0, 0, 0))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.build(s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Expected ErrInvalidScene, got %v", err)
			}
		})
	}
}
