package astro

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestProject_CardinalPoints(t *testing.T) {
	tests := []struct {
		name     string
		ra, dec  float64
		radius   float64
		expected Vec3
	}{
		{"origin of RA on equator", 0, 0, 10, Vec3{10, 0, 0}},
		{"RA 90 on equator", 90, 0, 10, Vec3{0, 0, 10}},
		{"RA 180 on equator", 180, 0, 10, Vec3{-10, 0, 0}},
		{"RA 270 on equator", 270, 0, 10, Vec3{0, 0, -10}},
		{"north celestial pole", 0, 90, 10, Vec3{0, 10, 0}},
		{"south celestial pole", 0, -90, 10, Vec3{0, -10, 0}},
		{"unit radius", 0, 0, 1, Vec3{1, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(tc.ra, tc.dec, tc.radius)
			if math.Abs(got.X-tc.expected.X) > tol ||
				math.Abs(got.Y-tc.expected.Y) > tol ||
				math.Abs(got.Z-tc.expected.Z) > tol {
				t.Errorf("Project(%v, %v, %v) = %+v, want %+v",
					tc.ra, tc.dec, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestProject_PreservesRadius(t *testing.T) {
	const radius = 10.2

	for ra := 0.0; ra < 360; ra += 17.5 {
		for dec := -90.0; dec <= 90; dec += 12.5 {
			p := Project(ra, dec, radius)
			if math.Abs(p.Norm()-radius) > tol {
				t.Errorf("Project(%v, %v, %v): |p| = %v, want %v",
					ra, dec, radius, p.Norm(), radius)
			}
		}
	}
}

func TestProject_OutOfDomainInputs(t *testing.T) {
	// Out-of-range inputs go through the same trigonometry, unclamped.
	if got, want := Project(360, 0, 5), Project(0, 0, 5); vecDist(got, want) > tol {
		t.Errorf("Project(360,0,5) = %+v, want %+v", got, want)
	}
	if got, want := Project(-90, 0, 5), Project(270, 0, 5); vecDist(got, want) > tol {
		t.Errorf("Project(-90,0,5) = %+v, want %+v", got, want)
	}
	// dec=180 folds through the pole; radius is still preserved
	p := Project(0, 180, 5)
	if math.Abs(p.Norm()-5) > tol {
		t.Errorf("Project(0,180,5): |p| = %v, want 5", p.Norm())
	}
}

func TestRotateY(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec3
		angle    float64
		expected Vec3
	}{
		{"zero rotation", Vec3{1, 2, 3}, 0, Vec3{1, 2, 3}},
		{"quarter turn moves +X to -Z", Vec3{1, 0, 0}, math.Pi / 2, Vec3{0, 0, -1}},
		{"quarter turn moves +Z to +X", Vec3{0, 0, 1}, math.Pi / 2, Vec3{1, 0, 0}},
		{"half turn negates X and Z", Vec3{1, 0, 1}, math.Pi, Vec3{-1, 0, -1}},
		{"Y axis is fixed", Vec3{0, 4, 0}, 1.234, Vec3{0, 4, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateY(tc.in, tc.angle)
			if vecDist(got, tc.expected) > tol {
				t.Errorf("RotateY(%+v, %v) = %+v, want %+v", tc.in, tc.angle, got, tc.expected)
			}
		})
	}
}

func TestRotateY_PreservesNorm(t *testing.T) {
	v := Project(123.4, -56.7, 10.2)
	for a := 0.0; a < 7; a += 0.31 {
		r := RotateY(v, a)
		if math.Abs(r.Norm()-v.Norm()) > tol {
			t.Errorf("RotateY norm changed: %v -> %v at angle %v", v.Norm(), r.Norm(), a)
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		name      string
		ra1, dec1 float64
		ra2, dec2 float64
		expected  float64
	}{
		{"coincident", 10, 20, 10, 20, 0},
		{"along equator", 0, 0, 5, 0, 5},
		{"pole to equator", 0, 90, 123, 0, 90},
		{"antipodal", 0, 0, 180, 0, 180},
		{"RA wrap", 359, 0, 1, 0, 2},
		{"pole to pole", 0, 90, 0, -90, 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Separation(tc.ra1, tc.dec1, tc.ra2, tc.dec2)
			if math.Abs(got-tc.expected) > 1e-6 {
				t.Errorf("Separation = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestSeparation_Symmetric(t *testing.T) {
	a := Separation(12.3, 45.6, 78.9, -10.1)
	b := Separation(78.9, -10.1, 12.3, 45.6)
	if math.Abs(a-b) > tol {
		t.Errorf("Separation not symmetric: %v vs %v", a, b)
	}
}

func TestVec3_Ops(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{4, -5, 6}

	if got := v.Add(w); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(w); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Dot(w); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := v.Cross(w); got != (Vec3{27, 6, -13}) {
		t.Errorf("Cross = %+v", got)
	}
	if got := (Vec3{3, 4, 0}).Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
	n := Vec3{0, 0, 7}.Normalize()
	if vecDist(n, Vec3{0, 0, 1}) > tol {
		t.Errorf("Normalize = %+v", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize(zero) = %+v, want zero", z)
	}
}

func vecDist(a, b Vec3) float64 {
	return a.Sub(b).Norm()
}
