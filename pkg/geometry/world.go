package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FindNearestHit returns the closest intersection among shapes within (tMin, tMax).
// Each accepted hit narrows tMax, so on an exact tie the earlier shape wins.
func FindNearestHit(shapes []Shape, ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closestHit HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Occluded reports whether any shape intersects the ray within (tMin, tMax)
func Occluded(shapes []Shape, ray core.Ray, tMin, tMax float64) bool {
	for _, shape := range shapes {
		if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
			return true
		}
	}
	return false
}
