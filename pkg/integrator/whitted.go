package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive ray tracing: local Blinn-Phong illumination
// for opaque surfaces, Fresnel-weighted reflection and refraction for dielectrics.
type WhittedIntegrator struct {
	bias Bias
}

// NewWhittedIntegrator creates a new recursive integrator
func NewWhittedIntegrator(bias Bias) *WhittedIntegrator {
	return &WhittedIntegrator{bias: bias}
}

// RayColor implements Integrator
func (w *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Vec3 {
	// Out of bounces: the ray is absorbed
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := geometry.FindNearestHit(sc.Shapes, ray, w.bias.TMin, w.bias.TMax)
	if !isHit {
		return sc.Background.Color(ray.Direction)
	}

	switch mat := hit.Material.(type) {
	case *material.Dielectric:
		return w.shadeDielectric(ray, hit, mat, sc, depth)
	case *material.Opaque:
		return w.shadeOpaque(ray, hit, mat, sc, depth)
	default:
		return core.Vec3{}
	}
}

// shadeDielectric blends reflected and refracted light by Schlick reflectance
func (w *WhittedIntegrator) shadeDielectric(ray core.Ray, hit geometry.HitRecord, mat *material.Dielectric, sc *scene.Scene, depth int) core.Vec3 {
	etaI, etaT := mat.Indices(hit.FrontFace)
	eta := etaI / etaT

	unitDirection := ray.Direction.Normalize()
	cosI := math.Max(-1, math.Min(1, -unitDirection.Dot(hit.Normal)))
	kr := material.Reflectance(cosI, eta)

	reflectRay := core.NewRay(
		hit.Point.Add(hit.Normal.Multiply(w.bias.RecursionBias)),
		material.Reflect(unitDirection, hit.Normal),
	)
	reflection := w.RayColor(reflectRay, sc, depth-1)

	var refraction core.Vec3
	if refractDir, ok := material.Refract(unitDirection, hit.Normal, eta); ok {
		refractRay := core.NewRay(
			hit.Point.Subtract(hit.Normal.Multiply(w.bias.RecursionBias)),
			refractDir,
		)
		refraction = w.RayColor(refractRay, sc, depth-1)
	} else {
		// Total internal reflection
		kr = 1
	}

	color := reflection.Multiply(kr).Add(refraction.Multiply(1 - kr).MultiplyVec(mat.Albedo))
	return color.Clamp(0, 1)
}

// shadeOpaque computes ambient + diffuse + Blinn specular from each visible light,
// then mixes in the mirror reflection by the material's reflectivity
func (w *WhittedIntegrator) shadeOpaque(ray core.Ray, hit geometry.HitRecord, mat *material.Opaque, sc *scene.Scene, depth int) core.Vec3 {
	local := ambient(mat.Albedo)
	viewDir := ray.Origin.Subtract(hit.Point).Normalize()

	for _, sample := range visibleLights(sc, hit, w.bias) {
		cosine := max(0, hit.Normal.Dot(sample.Direction))
		diffuse := mat.Albedo.MultiplyVec(sample.Emission).Multiply(cosine * mat.DiffuseK)

		halfway := sample.Direction.Add(viewDir).Normalize()
		specAngle := max(0, hit.Normal.Dot(halfway))
		specular := sample.Emission.Multiply(math.Pow(specAngle, mat.Shininess) * mat.SpecularK)

		local = local.Add(diffuse).Add(specular)
	}

	if mat.Reflectivity > 0 {
		reflectRay := core.NewRay(
			hit.Point.Add(hit.Normal.Multiply(w.bias.RecursionBias)),
			material.Reflect(ray.Direction.Normalize(), hit.Normal),
		)
		reflected := w.RayColor(reflectRay, sc, depth-1)
		local = local.Multiply(1 - mat.Reflectivity).Add(reflected.Multiply(mat.Reflectivity))
	}

	return local.Clamp(0, 1)
}
