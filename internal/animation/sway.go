// Package animation holds the idle motion applied to the shoe every frame.
package animation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the transform of the shoe group for one frame.
// Rotation is an XYZ Euler rotation in radians.
type Pose struct {
	Rotation  [3]float32
	PositionY float32
}

// IdleSway returns the pose at t seconds of elapsed time. It depends on nothing
// but t, so any frame can be recomputed and the motion restarts cleanly at t = 0.
func IdleSway(t float32) Pose {
	bob := 1 + math32.Sin(t/1.5)
	return Pose{
		Rotation: [3]float32{
			math32.Cos(t/4) / 8,
			math32.Sin(t/4) / 8,
			-0.2 - bob/20,
		},
		PositionY: bob / 10,
	}
}

// Matrix returns the model matrix: translate, then rotate X, Y, Z (intrinsic XYZ order).
func (p Pose) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, p.PositionY, 0).
		Mul4(mgl32.HomogRotate3DX(p.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(p.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(p.Rotation[2]))
}
