package pick

import (
	"math"
	"testing"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/scene"
)

func testCam() Camera {
	return Camera{
		AzDeg:    0,
		ElDeg:    0,
		Distance: 30,
		FOVDeg:   50,
		Aspect:   1.6,
	}
}

func markerAt(id string, ra, dec float64) *scene.Marker {
	return &scene.Marker{
		Record:   &scene.EventRecord{ID: id, RAdeg: ra, DecDeg: dec},
		Position: astro.Project(ra, dec, scene.ShellRadius),
		Scale:    1.0,
	}
}

func TestCamera_Position(t *testing.T) {
	cam := testCam()
	pos := cam.Position()
	want := astro.Vec3{X: 30}
	if pos.Sub(want).Norm() > 1e-9 {
		t.Errorf("Position = %+v, want %+v", pos, want)
	}

	// Orbit distance holds at any angle
	cam.AzDeg, cam.ElDeg = 123, -45
	if math.Abs(cam.Position().Norm()-30) > 1e-9 {
		t.Errorf("orbit radius = %v, want 30", cam.Position().Norm())
	}
}

func TestCamera_BasisOrthonormal(t *testing.T) {
	cam := testCam()
	cam.AzDeg, cam.ElDeg = 217, 38

	right, up, forward := cam.Basis()
	for name, v := range map[string]astro.Vec3{"right": right, "up": up, "forward": forward} {
		if math.Abs(v.Norm()-1) > 1e-9 {
			t.Errorf("%s not unit length: %v", name, v.Norm())
		}
	}
	if d := math.Abs(right.Dot(up)); d > 1e-9 {
		t.Errorf("right·up = %v", d)
	}
	if d := math.Abs(right.Dot(forward)); d > 1e-9 {
		t.Errorf("right·forward = %v", d)
	}
	if d := math.Abs(up.Dot(forward)); d > 1e-9 {
		t.Errorf("up·forward = %v", d)
	}
}

func TestCamera_CenterRayHitsOrigin(t *testing.T) {
	cam := testCam()
	cam.AzDeg, cam.ElDeg = 77, 12

	ray := cam.RayThrough(NDC{})
	// Closest approach of the center ray to the origin should be ~0
	tClosest := ray.Origin.Scale(-1).Dot(ray.Dir)
	closest := ray.Origin.Add(ray.Dir.Scale(tClosest))
	if closest.Norm() > 1e-9 {
		t.Errorf("center ray misses origin by %v", closest.Norm())
	}
}

func TestCamera_ProjectNDC(t *testing.T) {
	cam := testCam()

	// The globe center projects to the view center
	ndc, ok := cam.ProjectNDC(astro.Vec3{})
	if !ok {
		t.Fatal("origin not projectable")
	}
	if math.Abs(ndc.X) > 1e-9 || math.Abs(ndc.Y) > 1e-9 {
		t.Errorf("origin NDC = %+v, want (0,0)", ndc)
	}

	// A point behind the camera is rejected
	if _, ok := cam.ProjectNDC(astro.Vec3{X: 40}); ok {
		t.Error("point behind camera reported as projectable")
	}

	// A point above the origin appears in the upper half
	ndc, ok = cam.ProjectNDC(astro.Vec3{Y: 5})
	if !ok || ndc.Y <= 0 {
		t.Errorf("elevated point NDC = %+v, ok=%v, want Y > 0", ndc, ok)
	}
}

func TestCamera_ProjectRayRoundTrip(t *testing.T) {
	cam := testCam()
	cam.AzDeg, cam.ElDeg = 310, -25

	p := astro.Project(123.4, 31.2, scene.ShellRadius)
	ndc, ok := cam.ProjectNDC(p)
	if !ok {
		t.Fatal("point not projectable")
	}

	// The ray through the projected NDC must pass through the point
	ray := cam.RayThrough(ndc)
	tAlong := p.Sub(ray.Origin).Dot(ray.Dir)
	closest := ray.Origin.Add(ray.Dir.Scale(tAlong))
	if closest.Sub(p).Norm() > 1e-6 {
		t.Errorf("round trip misses point by %v", closest.Sub(p).Norm())
	}
}

func TestRay_IntersectSphere(t *testing.T) {
	ray := Ray{Origin: astro.Vec3{X: 30}, Dir: astro.Vec3{X: -1}}

	tests := []struct {
		name   string
		center astro.Vec3
		radius float64
		wantT  float64
		wantOK bool
	}{
		{"head-on", astro.Vec3{X: 10}, 1, 19, true},
		{"grazing inside radius", astro.Vec3{X: 10, Y: 0.5}, 1, 0, true},
		{"clear miss", astro.Vec3{X: 10, Y: 5}, 1, 0, false},
		{"behind origin", astro.Vec3{X: 40}, 1, 0, false},
		{"origin inside sphere", astro.Vec3{X: 29.5}, 1, 0.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ray.IntersectSphere(tc.center, tc.radius)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok || tc.wantT == 0 {
				return
			}
			if math.Abs(got-tc.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", got, tc.wantT)
			}
		})
	}
}

func TestPick_NearestWins(t *testing.T) {
	cam := testCam()
	// front sits at (+shell,0,0) near the camera, back on the far side,
	// offside on +Z out of the center ray.
	front := markerAt("front", 0, 0)
	back := markerAt("back", 180, 0)
	offside := markerAt("off", 90, 0)

	got := Pick(NDC{}, cam, 0, []*scene.Marker{back, offside, front})
	if got != front {
		t.Fatalf("Pick picked %v, want front marker", name(got))
	}
}

func TestPick_NoHit(t *testing.T) {
	cam := testCam()
	markers := []*scene.Marker{markerAt("a", 0, 0)}

	if got := Pick(NDC{X: 1, Y: 1}, cam, 0, markers); got != nil {
		t.Errorf("Pick = %v, want nil for empty space", name(got))
	}
	if got := Pick(NDC{}, cam, 0, nil); got != nil {
		t.Errorf("Pick = %v, want nil for empty registry", name(got))
	}
}

func TestPick_RespectsRotation(t *testing.T) {
	cam := testCam()
	m := markerAt("rot", 90, 0) // base position on +Z, out of the center ray

	if got := Pick(NDC{}, cam, 0, []*scene.Marker{m}); got != nil {
		t.Fatal("unrotated marker should not be under the center ray")
	}

	// A quarter turn brings +Z around to +X, in front of the camera
	if got := Pick(NDC{}, cam, math.Pi/2, []*scene.Marker{m}); got != m {
		t.Errorf("rotated Pick = %v, want marker", name(got))
	}
}

func TestPick_Idempotent(t *testing.T) {
	cam := testCam()
	markers := []*scene.Marker{markerAt("a", 0, 0), markerAt("b", 2, 1)}

	first := Pick(NDC{}, cam, 0, markers)
	for i := 0; i < 5; i++ {
		if got := Pick(NDC{}, cam, 0, markers); got != first {
			t.Fatalf("Pick result changed between identical calls")
		}
	}
}

func name(m *scene.Marker) string {
	if m == nil {
		return "<nil>"
	}
	return m.Record.ID
}
