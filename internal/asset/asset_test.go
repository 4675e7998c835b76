package asset

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kicks-lab/internal/store"
)

// shoeDoc builds a document shaped like the shoe model: one node per region plus an
// unnamed helper node without a mesh.
func shoeDoc() *gltf.Document {
	doc := &gltf.Document{}
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "Scene"})
	for i, def := range DefaultManifest().Regions {
		doc.Materials = append(doc.Materials, &gltf.Material{Name: def.Material})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       def.Node,
			Primitives: []*gltf.Primitive{{Material: gltf.Index(i)}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: def.Node, Mesh: gltf.Index(i)})
	}
	return doc
}

func TestBind_DefaultShoe(t *testing.T) {
	bindings, err := Bind(shoeDoc(), DefaultManifest())
	require.NoError(t, err)
	require.Len(t, bindings, 8)
	assert.Equal(t, Binding{MeshIndex: 0, Node: "shoe", Material: "laces", Region: store.Laces}, bindings[0])
	assert.Equal(t, Binding{MeshIndex: 7, Node: "shoe_7", Material: "patch", Region: store.Patch}, bindings[7])

	meshes := RegionMeshes(bindings)
	for i, r := range store.Regions {
		assert.Equal(t, i, meshes[r])
	}
}

func TestBind_MaterialDecidesRegion(t *testing.T) {
	doc := shoeDoc()
	// Swap the materials of the first two nodes.
	doc.Meshes[0].Primitives[0].Material = gltf.Index(1)
	doc.Meshes[1].Primitives[0].Material = gltf.Index(0)

	bindings, err := Bind(doc, DefaultManifest())
	require.NoError(t, err)
	assert.Equal(t, store.Mesh, bindings[0].Region)
	assert.Equal(t, store.Laces, bindings[1].Region)
}

func TestBind_MissingRegion(t *testing.T) {
	doc := shoeDoc()
	doc.Nodes = doc.Nodes[:len(doc.Nodes)-1]
	_, err := Bind(doc, DefaultManifest())
	assert.ErrorIs(t, err, ErrRegionMissing)
}

func TestBind_CompressedModelRejected(t *testing.T) {
	doc := shoeDoc()
	doc.ExtensionsUsed = []string{"KHR_draco_mesh_compression"}
	doc.ExtensionsRequired = []string{"KHR_draco_mesh_compression"}
	_, err := Bind(doc, DefaultManifest())
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.Contains(t, err.Error(), "KHR_draco_mesh_compression")
}

func TestBind_OptionalExtensionAccepted(t *testing.T) {
	doc := shoeDoc()
	doc.ExtensionsUsed = []string{"KHR_materials_emissive_strength"}
	doc.ExtensionsRequired = []string{"KHR_materials_emissive_strength"}
	_, err := Bind(doc, DefaultManifest())
	assert.NoError(t, err)
}

func TestBind_UnnamedMaterialFallsBackToNode(t *testing.T) {
	doc := shoeDoc()
	doc.Materials[3].Name = ""

	bindings, err := Bind(doc, DefaultManifest())
	require.NoError(t, err)
	assert.Equal(t, "shoe_3", bindings[3].Node)
	assert.Equal(t, store.Inner, bindings[3].Region)
}

func TestBind_DuplicateRegion(t *testing.T) {
	doc := shoeDoc()
	doc.Meshes[2].Primitives[0].Material = gltf.Index(0)
	_, err := Bind(doc, DefaultManifest())
	assert.ErrorIs(t, err, ErrRegionDuplicate)
}

func TestBind_ExtraMeshesUncolored(t *testing.T) {
	doc := shoeDoc()
	doc.Materials = append(doc.Materials, &gltf.Material{Name: "logo"})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{{Material: gltf.Index(8)}}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "logo", Mesh: gltf.Index(8)})

	bindings, err := Bind(doc, DefaultManifest())
	require.NoError(t, err)
	require.Len(t, bindings, 9)
	assert.Equal(t, store.Region(""), bindings[8].Region)
	assert.Equal(t, "logo", bindings[8].Material)
}

func TestParseManifest(t *testing.T) {
	m, err := LoadManifest(filepath.Join("..", "..", "assets", "shoe.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultManifest(), m)
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := ParseManifest([]byte("regions:\n  - region: laces\n    material: laces\n"))
	assert.ErrorIs(t, err, ErrBadManifest)

	_, err = ParseManifest([]byte("regions:\n  - region: heel\n    material: heel\n"))
	assert.ErrorIs(t, err, store.ErrUnknownRegion)

	_, err = ParseManifest([]byte("regions: [\n"))
	assert.Error(t, err)
}

func TestLoadManifest_MissingFileUsesDefault(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultManifest(), m)
}

func TestInspect_MissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.glb"), DefaultManifest())
	assert.Error(t, err)
}
