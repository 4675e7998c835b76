// Package shoe draws the configurable shoe model: one lit material per region, colored
// from the store, swayed by the idle animation and hit-tested against pointer rays.
package shoe

import (
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"kicks-lab/internal/animation"
	"kicks-lab/internal/asset"
	"kicks-lab/internal/palette"
	"kicks-lab/internal/pointer"
	"kicks-lab/internal/store"
)

// ErrMeshCount is returned when the renderer and the glTF document disagree on the
// number of meshes, so region bindings cannot be trusted.
var ErrMeshCount = errors.New("mesh count mismatch")

// Shoe is the loaded model. GPU resources are created by Load and released by Unload; Load
// must run after the window exists.
type Shoe struct {
	log     *logrus.Entry
	palette *palette.Palette

	model     rl.Model
	meshes    []rl.Mesh
	regions   map[store.Region]int
	materials map[store.Region]rl.Material
	shader    litShader
	lit       bool

	pose      animation.Pose
	transform rl.Matrix
}

// Load loads the model at path, binds its meshes to regions with manifest m and builds one
// material per region. Colors come from p.
func Load(path string, m asset.Manifest, p *palette.Palette, log *logrus.Entry) (*Shoe, error) {
	bindings, err := asset.Inspect(path, m)
	if err != nil {
		return nil, fmt.Errorf("shoe: %w", err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return nil, fmt.Errorf("shoe: load %s: no meshes", path)
	}
	meshes := model.GetMeshes()
	if len(meshes) != len(bindings) {
		rl.UnloadModel(model)
		return nil, fmt.Errorf("shoe: %w: renderer has %d, document has %d", ErrMeshCount, len(meshes), len(bindings))
	}

	s := &Shoe{
		log:       log,
		palette:   p,
		model:     model,
		meshes:    meshes,
		regions:   asset.RegionMeshes(bindings),
		materials: make(map[store.Region]rl.Material, len(store.Regions)),
		transform: rl.MatrixIdentity(),
	}
	s.shader, s.lit = loadLitShader()
	if !s.lit {
		log.Warn("lit shader failed to compile, using default shading")
	}
	for r := range s.regions {
		mtl := rl.LoadMaterialDefault()
		if s.lit {
			mtl.Shader = s.shader.shader
		}
		s.materials[r] = mtl
	}
	s.applyColors()
	log.WithFields(logrus.Fields{"path": path, "meshes": len(meshes), "regions": len(s.regions)}).Info("model loaded")
	return s, nil
}

// Update poses the model for t seconds of elapsed time and picks up color changes.
func (s *Shoe) Update(t float32) {
	s.pose = animation.IdleSway(t)
	s.transform = toMatrix(s.pose.Matrix())
	s.applyColors()
}

// Pose returns the pose set by the last Update.
func (s *Shoe) Pose() animation.Pose {
	return s.pose
}

func (s *Shoe) applyColors() {
	for r, c := range s.palette.Drain() {
		mtl, ok := s.materials[r]
		if !ok {
			continue
		}
		if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = toRL(c)
		}
	}
}

// Draw draws every region. Call between BeginMode3D and EndMode3D.
func (s *Shoe) Draw(viewPos rl.Vector3, light Light) {
	if s.lit {
		s.shader.setUniforms(viewPos, light)
	}
	for r, i := range s.regions {
		rl.DrawMesh(s.meshes[i], s.materials[r], s.transform)
	}
}

// Pick returns the regions the ray hits, in no particular order. The pointer dispatcher
// sorts them by distance.
func (s *Shoe) Pick(ray rl.Ray) []pointer.Hit {
	var hits []pointer.Hit
	for r, i := range s.regions {
		col := rl.GetRayCollisionMesh(ray, s.meshes[i], s.transform)
		if col.Hit {
			hits = append(hits, pointer.Hit{Object: string(r), Distance: col.Distance})
		}
	}
	return hits
}

// Unload releases the model, materials and shader.
func (s *Shoe) Unload() {
	for _, mtl := range s.materials {
		// The shared shader is unloaded once below; detach it so UnloadMaterial leaves it.
		mtl.Shader = rl.Shader{}
		rl.UnloadMaterial(mtl)
	}
	s.materials = nil
	s.shader.unload()
	rl.UnloadModel(s.model)
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
