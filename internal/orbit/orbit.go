// Package orbit implements an orbit camera controller: the camera sits on a sphere around
// a target and is rotated by pointer drags. Zoom and pan are not supported.
package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// polarEps keeps the camera off the pole where the up vector degenerates.
	polarEps = 1e-6
	// narrowWidth is the window width below which the camera starts further away.
	narrowWidth = 500
)

// InitialPosition returns the starting camera position for a window of the given width.
func InitialPosition(windowWidth int) mgl32.Vec3 {
	if windowWidth < narrowWidth {
		return mgl32.Vec3{0, 0, 4.25}
	}
	return mgl32.Vec3{0, 0, 3.25}
}

// Orbit holds spherical coordinates around Target. Theta is the azimuth around +Y
// (0 looks down -Z from +Z) and Phi is the polar angle from +Y.
type Orbit struct {
	Target      mgl32.Vec3
	MinPolar    float32
	MaxPolar    float32
	RotateSpeed float32

	radius, theta, phi    float32
	initRadius, initTheta float32
	initPhi               float32
}

// New returns an orbit starting at position looking at target. The polar angle is
// limited to the upper hemisphere, so the camera never goes below the target.
func New(position, target mgl32.Vec3) *Orbit {
	o := &Orbit{
		Target:      target,
		MinPolar:    0,
		MaxPolar:    math32.Pi / 2,
		RotateSpeed: 1,
	}
	o.radius, o.theta, o.phi = toSpherical(position.Sub(target))
	o.phi = o.clampPhi(o.phi)
	o.initRadius, o.initTheta, o.initPhi = o.radius, o.theta, o.phi
	return o
}

func toSpherical(offset mgl32.Vec3) (radius, theta, phi float32) {
	radius = offset.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(offset.X(), offset.Z())
	phi = math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))
	return radius, theta, phi
}

func (o *Orbit) clampPhi(phi float32) float32 {
	lo := math32.Max(o.MinPolar, polarEps)
	hi := math32.Min(o.MaxPolar, math32.Pi-polarEps)
	return mgl32.Clamp(phi, lo, hi)
}

// Rotate applies a drag of dx, dy pixels in a viewport of the given height.
// Dragging the full viewport height turns the camera one full revolution.
func (o *Orbit) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	k := 2 * math32.Pi * o.RotateSpeed / viewportHeight
	o.theta -= dx * k
	o.phi = o.clampPhi(o.phi - dy*k)
}

// Position returns the camera position in world space.
func (o *Orbit) Position() mgl32.Vec3 {
	sinPhi := math32.Sin(o.phi)
	return o.Target.Add(mgl32.Vec3{
		o.radius * sinPhi * math32.Sin(o.theta),
		o.radius * math32.Cos(o.phi),
		o.radius * sinPhi * math32.Cos(o.theta),
	})
}

// Angles returns the current azimuth and polar angle in radians.
func (o *Orbit) Angles() (theta, phi float32) {
	return o.theta, o.phi
}

// Reset puts the camera back where New placed it.
func (o *Orbit) Reset() {
	o.radius, o.theta, o.phi = o.initRadius, o.initTheta, o.initPhi
}

// AtInitial reports whether the camera is at its initial orientation.
func (o *Orbit) AtInitial() bool {
	return o.radius == o.initRadius && o.theta == o.initTheta && o.phi == o.initPhi
}
