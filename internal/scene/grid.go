package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// Grid on the floor plane under the shoe, in world units.
const (
	gridHalf  = 5
	gridStep  = 0.25
	gridMajor = 4 // every gridMajor-th line is drawn darker
)

var (
	gridMinorColor = rl.NewColor(156, 163, 175, 60)
	gridMajorColor = rl.NewColor(107, 114, 128, 110)
	gridAxisX      = rl.NewColor(220, 80, 80, 200)
	gridAxisZ      = rl.NewColor(80, 80, 220, 200)
)

// drawEditorGrid draws a square grid at the shadow height with the X and Z axes through
// the origin.
func drawEditorGrid() {
	n := int(gridHalf / gridStep)
	for i := -n; i <= n; i++ {
		c := gridMinorColor
		if i%gridMajor == 0 {
			c = gridMajorColor
		}
		k := float32(i) * gridStep
		switch i {
		case 0:
			rl.DrawLine3D(rl.NewVector3(-gridHalf, shadowY, 0), rl.NewVector3(gridHalf, shadowY, 0), gridAxisX)
			rl.DrawLine3D(rl.NewVector3(0, shadowY, -gridHalf), rl.NewVector3(0, shadowY, gridHalf), gridAxisZ)
		default:
			rl.DrawLine3D(rl.NewVector3(k, shadowY, -gridHalf), rl.NewVector3(k, shadowY, gridHalf), c)
			rl.DrawLine3D(rl.NewVector3(-gridHalf, shadowY, k), rl.NewVector3(gridHalf, shadowY, k), c)
		}
	}
}
