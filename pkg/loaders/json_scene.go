package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrUnknownMaterial is returned for an unrecognized material type or an undefined material reference
var ErrUnknownMaterial = errors.New("unknown material")

// SceneFile is the JSON layout of a scene description
type SceneFile struct {
	Background *BackgroundCfg         `json:"background,omitempty"`
	Defaults   *DefaultsCfg           `json:"defaults,omitempty"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Spheres    []SphereCfg            `json:"spheres"`
	Lights     []LightCfg             `json:"lights"`
}

// Vec3Cfg is written as a three element array
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

type BackgroundCfg struct {
	Bottom Vec3Cfg `json:"bottom"`
	Top    Vec3Cfg `json:"top"`
}

type DefaultsCfg struct {
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	SamplesPerPixel int    `json:"samples,omitempty"`
	MaxDepth        *int   `json:"depth,omitempty"`
	Mode            string `json:"mode,omitempty"`
}

// MaterialCfg describes one material. Type is one of
// "lambertian", "plastic", "mirror", "opaque" or "dielectric".
type MaterialCfg struct {
	Type         string   `json:"type"`
	Albedo       *Vec3Cfg `json:"albedo,omitempty"`
	Diffuse      *float64 `json:"diffuse,omitempty"`
	Specular     float64  `json:"specular,omitempty"`
	Shininess    float64  `json:"shininess,omitempty"`
	Reflectivity float64  `json:"reflectivity,omitempty"`
	IOR          float64  `json:"ior,omitempty"` // dielectric only; defaults to 1
}

type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// LightCfg describes a point light. Attenuation is [constant, linear, quadratic]
// and defaults to [1, 0, 0].
type LightCfg struct {
	Position    Vec3Cfg  `json:"position"`
	Intensity   Vec3Cfg  `json:"intensity"`
	Attenuation *Vec3Cfg `json:"attenuation,omitempty"`
}

// LoadSceneFile reads and builds a scene from a JSON file
func LoadSceneFile(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return sc, nil
}

// ParseScene decodes a JSON scene description and builds a validated scene
func ParseScene(r io.Reader) (*scene.Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var cfg SceneFile
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	return BuildScene(cfg)
}

// BuildScene converts a decoded scene description into a scene
func BuildScene(cfg SceneFile) (*scene.Scene, error) {
	sc := scene.New()
	if cfg.Background != nil {
		sc.Background = scene.Background{Bottom: cfg.Background.Bottom.vec(), Top: cfg.Background.Top.vec()}
	}
	if cfg.Defaults != nil {
		sc.Defaults = scene.RenderDefaults(*cfg.Defaults)
	}

	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sp := range cfg.Spheres {
		mat, ok := materials[sp.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q is not defined", i, ErrUnknownMaterial, sp.Material)
		}
		sc.AddSphere(sp.Center.vec(), sp.Radius, mat)
	}

	for _, lc := range cfg.Lights {
		att := Vec3Cfg{1, 0, 0}
		if lc.Attenuation != nil {
			att = *lc.Attenuation
		}
		sc.AddPointLight(lights.NewAttenuatedPointLight(lc.Position.vec(), lc.Intensity.vec(), att[0], att[1], att[2]))
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func buildMaterial(mc MaterialCfg) (material.Material, error) {
	albedo := core.Splat(1)
	if mc.Albedo != nil {
		albedo = mc.Albedo.vec()
	}

	var mat material.Material
	switch mc.Type {
	case "lambertian":
		mat = material.NewLambertian(albedo)
	case "plastic":
		mat = material.NewPlastic(albedo, mc.Specular, mc.Shininess)
	case "mirror":
		mat = material.NewMirror(albedo, mc.Reflectivity)
	case "opaque":
		diffuse := 1.0
		if mc.Diffuse != nil {
			diffuse = *mc.Diffuse
		}
		mat = &material.Opaque{
			Albedo:       albedo,
			DiffuseK:     diffuse,
			SpecularK:    mc.Specular,
			Shininess:    mc.Shininess,
			Reflectivity: mc.Reflectivity,
		}
	case "dielectric":
		ior := mc.IOR
		if ior == 0 {
			ior = 1.0
		}
		mat = material.NewTintedDielectric(albedo, ior)
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnknownMaterial, mc.Type)
	}

	if err := mat.Validate(); err != nil {
		return nil, err
	}
	return mat, nil
}
