// Package pick resolves which marker, if any, the pointer targets: an
// orbit camera, pointer rays, and ray/sphere hit testing.
package pick

import (
	"math"

	"github.com/skyfuse/skyfuse/internal/astro"
)

// NDC is a pointer position in normalized device coordinates, each axis
// in [-1, 1] with +Y up and (0,0) at the view center.
type NDC struct {
	X, Y float64
}

// Camera orbits the origin at a fixed distance, always looking at the
// center of the globe.
type Camera struct {
	AzDeg    float64 // orbit azimuth, degrees
	ElDeg    float64 // orbit elevation, degrees; keep within ±89 to avoid a degenerate basis
	Distance float64
	FOVDeg   float64 // vertical field of view
	Aspect   float64 // view width / height in world proportions
}

// Position returns the camera's world position. The orbit uses the same
// spherical convention as marker projection.
func (c Camera) Position() astro.Vec3 {
	return astro.Project(c.AzDeg, c.ElDeg, c.Distance)
}

// Basis returns the camera's right/up/forward unit vectors.
func (c Camera) Basis() (right, up, forward astro.Vec3) {
	pos := c.Position()
	forward = pos.Scale(-1).Normalize() // look at origin
	worldUp := astro.Vec3{Y: 1}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// RayThrough returns the world-space ray from the camera through a
// pointer position.
func (c Camera) RayThrough(ndc NDC) Ray {
	right, up, forward := c.Basis()
	tanHalf := math.Tan(degToRad(c.FOVDeg) / 2)

	dir := forward.
		Add(right.Scale(ndc.X * tanHalf * c.Aspect)).
		Add(up.Scale(ndc.Y * tanHalf)).
		Normalize()

	return Ray{Origin: c.Position(), Dir: dir}
}

// ProjectNDC maps a world point to normalized device coordinates. The
// second return is false when the point is at or behind the camera
// plane. Points outside [-1,1]² are returned as-is; the renderer clips.
func (c Camera) ProjectNDC(p astro.Vec3) (NDC, bool) {
	right, up, forward := c.Basis()
	rel := p.Sub(c.Position())

	depth := rel.Dot(forward)
	if depth <= 0 {
		return NDC{}, false
	}

	tanHalf := math.Tan(degToRad(c.FOVDeg) / 2)
	return NDC{
		X: rel.Dot(right) / (depth * tanHalf * c.Aspect),
		Y: rel.Dot(up) / (depth * tanHalf),
	}, true
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
