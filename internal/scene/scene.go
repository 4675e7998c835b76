// Package scene owns the 3D viewport: the orbit camera, the render target the viewport is
// drawn into, the contact shadow, the optional grid, and read-back for export.
package scene

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"kicks-lab/internal/orbit"
	"kicks-lab/internal/shadow"
)

const (
	fovY = 45
	// shadowY and shadowScale place the contact shadow plane under the shoe.
	shadowY     = -0.8
	shadowScale = 10
)

// Background is the viewport clear color.
var Background = rl.NewColor(229, 231, 235, 255)

// ErrNoTarget is returned by Capture before the first frame has been rendered.
var ErrNoTarget = errors.New("scene: no render target")

// Scene holds the orbit camera and renders the viewport into an offscreen target that is
// then drawn to the window. The target keeps the last frame, so it can be read back at
// any time.
type Scene struct {
	Camera      rl.Camera3D
	Orbit       *orbit.Orbit
	GridVisible bool

	target     rl.RenderTexture2D
	targetSize [2]int32

	shadowTex  rl.Texture2D
	shadowMesh rl.Mesh
	shadowMtl  rl.Material
	shadowOK   bool

	dragging bool
}

// New returns a scene whose camera starts at the position for a window of the given width,
// looking at the origin.
func New(windowWidth int) *Scene {
	s := &Scene{Orbit: orbit.New(orbit.InitialPosition(windowWidth), mgl32.Vec3{})}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovY
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Reset puts the camera back to its initial orientation.
func (s *Scene) Reset() {
	s.Orbit.Reset()
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	p := s.Orbit.Position()
	s.Camera.Position = rl.NewVector3(p.X(), p.Y(), p.Z())
}

// Update rotates the camera while the left button is dragged. A drag must start inside
// the viewport; it keeps going if the pointer leaves it.
func (s *Scene) Update(viewport rl.Rectangle) {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, viewport) {
		s.dragging = true
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.dragging = false
	}
	if s.dragging {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			s.Orbit.Rotate(d.X, d.Y, viewport.Height)
		}
	}
	s.syncCamera()
}

// Ray returns the pick ray through the window point p for a viewport drawn at viewport.
func (s *Scene) Ray(p rl.Vector2, viewport rl.Rectangle) rl.Ray {
	local := rl.NewVector2(p.X-viewport.X, p.Y-viewport.Y)
	return rl.GetScreenToWorldRayEx(local, s.Camera, int32(viewport.Width), int32(viewport.Height))
}

// Begin starts drawing the 3D viewport into the render target sized to viewport. The
// background, grid and contact shadow are drawn; the caller then draws the model
// and calls End. shadowSize scales the contact shadow (1 at rest).
func (s *Scene) Begin(viewport rl.Rectangle, shadowSize float32) {
	s.ensureTarget(int32(viewport.Width), int32(viewport.Height))
	s.ensureShadow()

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(Background)
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	if s.shadowOK {
		k := shadowScale * shadowSize
		m := rl.MatrixMultiply(rl.MatrixScale(k, 1, k), rl.MatrixTranslate(0, shadowY, 0))
		rl.DisableDepthMask()
		rl.DrawMesh(s.shadowMesh, s.shadowMtl, m)
		rl.EnableDepthMask()
	}
}

// End finishes the 3D pass started by Begin.
func (s *Scene) End() {
	rl.EndMode3D()
	rl.EndTextureMode()
}

// Draw blits the render target into viewport on the window.
func (s *Scene) Draw(viewport rl.Rectangle) {
	if s.target.ID == 0 {
		return
	}
	// Render textures are stored bottom-up; a negative source height flips them.
	src := rl.NewRectangle(0, 0, float32(s.target.Texture.Width), -float32(s.target.Texture.Height))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(viewport.X, viewport.Y), rl.White)
}

// Capture reads back the last rendered viewport frame, top row first.
func (s *Scene) Capture() (image.Image, error) {
	if s.target.ID == 0 {
		return nil, ErrNoTarget
	}
	img := rl.LoadImageFromTexture(s.target.Texture)
	if img == nil {
		return nil, ErrNoTarget
	}
	defer rl.UnloadImage(img)
	return transform.FlipV(img.ToImage()), nil
}

func (s *Scene) ensureTarget(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.target.ID != 0 && s.targetSize == [2]int32{w, h} {
		return
	}
	if s.target.ID != 0 {
		rl.UnloadRenderTexture(s.target)
	}
	s.target = rl.LoadRenderTexture(w, h)
	s.targetSize = [2]int32{w, h}
}

func (s *Scene) ensureShadow() {
	if s.shadowOK || s.shadowTex.ID != 0 {
		return
	}
	img := rl.NewImageFromImage(shadow.Image(shadow.DefaultOptions()))
	s.shadowTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(s.shadowTex) {
		return
	}
	s.shadowMesh = rl.GenMeshPlane(1, 1, 1, 1)
	s.shadowMtl = rl.LoadMaterialDefault()
	rl.SetMaterialTexture(&s.shadowMtl, rl.MapAlbedo, s.shadowTex)
	s.shadowOK = true
}

// Unload releases every GPU resource the scene created.
func (s *Scene) Unload() {
	if s.target.ID != 0 {
		rl.UnloadRenderTexture(s.target)
		s.target = rl.RenderTexture2D{}
	}
	if s.shadowOK {
		rl.UnloadMesh(&s.shadowMesh)
		rl.UnloadTexture(s.shadowTex)
		s.shadowOK = false
	}
}
