package pick

import (
	"math"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/scene"
)

// MarkerPickRadius is the bounding-sphere radius used for hit testing,
// in world units. It is independent of the hover scale so the hit area
// does not change under the pointer mid-hover.
const MarkerPickRadius = 0.35

// Ray is a world-space ray with unit direction.
type Ray struct {
	Origin astro.Vec3
	Dir    astro.Vec3
}

// IntersectSphere returns the smallest non-negative ray parameter at
// which the ray hits the sphere, and whether it hits at all.
func (r Ray) IntersectSphere(center astro.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)

	// |o + t·d - c|² = radius², with |d| = 1
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc // origin inside the sphere
	}
	if t < 0 {
		return 0, false // sphere entirely behind the origin
	}
	return t, true
}

// Pick resolves the topmost marker under the pointer: the one with the
// smallest ray parameter among all whose bounding spheres the pointer
// ray intersects. Marker positions are taken under the current shared
// rotation. Returns nil when nothing intersects.
//
// Pure with respect to its inputs; safe to call every frame.
func Pick(ndc NDC, cam Camera, rotation float64, markers []*scene.Marker) *scene.Marker {
	ray := cam.RayThrough(ndc)

	var (
		best  *scene.Marker
		bestT float64
	)
	for _, m := range markers {
		t, ok := ray.IntersectSphere(m.WorldPosition(rotation), MarkerPickRadius)
		if !ok {
			continue
		}
		if best == nil || t < bestT {
			best = m
			bestT = t
		}
	}
	return best
}
