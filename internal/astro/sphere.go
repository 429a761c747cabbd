// Package astro provides celestial-sphere math: projecting equatorial
// coordinates onto a 3D shell, angular separations, and the shared
// sphere rotation applied each frame.
package astro

import "math"

// Vec3 is a point or direction in the scene's right-handed coordinate
// system (Y up).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Project maps equatorial coordinates (RA/Dec in degrees) to a point on
// a sphere of the given radius centered at the origin:
//
//	x = r·cos(dec)·cos(ra)
//	y = r·sin(dec)
//	z = r·cos(dec)·sin(ra)
//
// The mapping is total: out-of-range inputs are projected through the
// same trigonometry without clamping.
func Project(raDeg, decDeg, radius float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	return Vec3{
		X: radius * math.Cos(dec) * math.Cos(ra),
		Y: radius * math.Sin(dec),
		Z: radius * math.Cos(dec) * math.Sin(ra),
	}
}

// RotateY rotates v about the +Y axis by angle radians. This is the
// shared rotation the frame driver applies to the planet and everything
// pinned to its shell.
func RotateY(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Separation returns the angular separation in degrees between two sky
// positions, via the spherical law of cosines.
func Separation(ra1, dec1, ra2, dec2 float64) float64 {
	r1 := degToRad(ra1)
	d1 := degToRad(dec1)
	r2 := degToRad(ra2)
	d2 := degToRad(dec2)

	cosSep := math.Sin(d1)*math.Sin(d2) + math.Cos(d1)*math.Cos(d2)*math.Cos(r1-r2)

	// Clamp to [-1, 1] to handle floating point errors
	if cosSep > 1 {
		cosSep = 1
	} else if cosSep < -1 {
		cosSep = -1
	}

	return radToDeg(math.Acos(cosSep))
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
