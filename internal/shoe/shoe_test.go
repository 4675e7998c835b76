package shoe

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"kicks-lab/internal/animation"
	"kicks-lab/internal/environment"
)

func TestToMatrix_Translation(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M15)
}

// The drawn pose and the picking transform must move points identically.
func TestToMatrix_MatchesPose(t *testing.T) {
	points := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0.3, -0.5, 0.8}}
	for _, at := range []float32{0, 1.7, 12.5, 40} {
		pose := animation.IdleSway(at).Matrix()
		m := toMatrix(pose)
		for _, p := range points {
			want := pose.Mul4x1(p.Vec4(1))
			got := rl.Vector3Transform(rl.NewVector3(p[0], p[1], p[2]), m)
			assert.InDelta(t, want[0], got.X, 1e-5, "t=%v p=%v", at, p)
			assert.InDelta(t, want[1], got.Y, 1e-5, "t=%v p=%v", at, p)
			assert.InDelta(t, want[2], got.Z, 1e-5, "t=%v p=%v", at, p)
		}
	}
}

func TestLight_WithEnvironment(t *testing.T) {
	env := environment.Environment{
		Sky:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Ground: color.RGBA{A: 255},
	}
	l := DefaultLight.WithEnvironment(env)
	assert.Equal(t, [3]float32{1, 1, 1}, l.Sky)
	assert.Equal(t, [3]float32{0, 0, 0}, l.Ground)
	assert.Equal(t, DefaultLight.Ambient, l.Ambient)
	assert.Equal(t, DefaultLight.Position, l.Position)

	assert.Equal(t, environment.Vec(environment.City.Sky), DefaultLight.Sky)
}
