// Package frame runs the per-tick frame body: frame-coherent hover
// picking and the fixed-rate rotations of the planet and star shell.
// The tick itself is scheduled by the UI's recurring tick command; the
// driver holds no timer so it tests without a display loop.
package frame

import (
	"github.com/skyfuse/skyfuse/internal/interact"
	"github.com/skyfuse/skyfuse/internal/pick"
	"github.com/skyfuse/skyfuse/internal/scene"
)

// Per-tick rotation rates in radians, at the nominal 30 ticks/second.
// The star shell drifts slower than the planet so the two layers read
// as independent.
const (
	PlanetRate = 0.0035
	StarRate   = 0.0008
)

// Driver owns the shared rotation state and applies one frame step at a
// time.
type Driver struct {
	planetRot float64
	starRot   float64
}

// NewDriver creates a driver with both rotations at zero.
func NewDriver() *Driver {
	return &Driver{}
}

// PlanetRotation returns the current shared rotation applied to the
// planet, the markers, and the correlation edges. Click handlers use it
// to pick against the same positions the last frame rendered.
func (d *Driver) PlanetRotation() float64 {
	return d.planetRot
}

// StarRotation returns the independent star-shell rotation.
func (d *Driver) StarRotation() float64 {
	return d.starRot
}

// Step runs one frame: resolve hover with the current pointer and
// camera against the markers as currently rotated, then advance both
// rotations for the render that follows. pointerActive is false until
// the first pointer event arrives; hover resolves to nothing then.
func (d *Driver) Step(ndc pick.NDC, pointerActive bool, cam pick.Camera, reg *scene.Registry, sm *interact.Machine) {
	var hit *scene.Marker
	if pointerActive {
		hit = pick.Pick(ndc, cam, d.planetRot, reg.AllMarkers())
	}
	sm.OnFrame(hit)

	d.planetRot += PlanetRate
	d.starRot += StarRate
}
