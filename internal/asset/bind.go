package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"kicks-lab/internal/store"
)

// Binding describes one drawable mesh of the loaded model. MeshIndex is the position of
// the mesh in the renderer's mesh list, which follows glTF node order and, inside a
// node, primitive order. Region is empty for meshes that are not colorable.
type Binding struct {
	MeshIndex int
	Node      string
	Material  string
	Region    store.Region
}

// Inspect opens a glTF or GLB file and binds its meshes against m.
func Inspect(path string, m Manifest) ([]Binding, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	return Bind(doc, m)
}

// unsupportedExtensions lists required glTF extensions the model loader cannot decode.
var unsupportedExtensions = map[string]bool{
	"KHR_draco_mesh_compression": true,
	"EXT_meshopt_compression":    true,
	"KHR_mesh_quantization":      true,
	"KHR_texture_basisu":         true,
}

// Bind walks the document's nodes in order and assigns each mesh primitive to the
// region whose material it uses. A primitive without a material name falls back to the
// region whose manifest node matches the node name. Every manifest region must be
// bound exactly once. Documents that require a compression extension are rejected.
func Bind(doc *gltf.Document, m Manifest) ([]Binding, error) {
	for _, ext := range doc.ExtensionsRequired {
		if unsupportedExtensions[ext] {
			return nil, fmt.Errorf("asset: %w: %s", ErrUnsupportedExtension, ext)
		}
	}
	var out []Binding
	bound := make(map[store.Region]int, len(m.Regions))
	meshIndex := 0
	for _, node := range doc.Nodes {
		if node.Mesh == nil || *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
			continue
		}
		mesh := doc.Meshes[*node.Mesh]
		for _, prim := range mesh.Primitives {
			b := Binding{MeshIndex: meshIndex, Node: node.Name}
			meshIndex++
			if prim.Material != nil && *prim.Material >= 0 && *prim.Material < len(doc.Materials) {
				b.Material = doc.Materials[*prim.Material].Name
			}
			def, ok := m.byMaterial(b.Material)
			if !ok && b.Material == "" {
				def, ok = m.byNode(b.Node)
			}
			if ok {
				if prev, dup := bound[def.Region]; dup {
					return nil, fmt.Errorf("asset: %w: %s on meshes %d and %d", ErrRegionDuplicate, def.Region, prev, b.MeshIndex)
				}
				bound[def.Region] = b.MeshIndex
				b.Region = def.Region
			}
			out = append(out, b)
		}
	}
	for _, def := range m.Regions {
		if _, ok := bound[def.Region]; !ok {
			return nil, fmt.Errorf("asset: %w: %s (node %s, material %s)", ErrRegionMissing, def.Region, def.Node, def.Material)
		}
	}
	return out, nil
}

// RegionMeshes maps each region to its mesh index.
func RegionMeshes(bindings []Binding) map[store.Region]int {
	out := make(map[store.Region]int, len(store.Regions))
	for _, b := range bindings {
		if b.Region != "" {
			out[b.Region] = b.MeshIndex
		}
	}
	return out
}
