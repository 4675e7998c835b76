// Package asset describes the shoe model: which sub-mesh of the GLB file belongs to
// which colorable region.
package asset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kicks-lab/internal/store"
)

var (
	// ErrRegionMissing is returned when a region in the manifest has no mesh in the model.
	ErrRegionMissing = errors.New("region missing from model")
	// ErrRegionDuplicate is returned when two meshes claim the same region.
	ErrRegionDuplicate = errors.New("region bound twice")
	// ErrBadManifest is returned for manifests that do not list each region exactly once.
	ErrBadManifest = errors.New("invalid manifest")
	// ErrUnsupportedExtension is returned for models that require a glTF extension the
	// renderer cannot decode, such as Draco mesh compression.
	ErrUnsupportedExtension = errors.New("unsupported glTF extension")
)

// RegionDef ties a region to the node and material that carry it in the model. The
// material decides the binding; Node is used for primitives without a named material.
type RegionDef struct {
	Region   store.Region `yaml:"region"`
	Node     string       `yaml:"node"`
	Material string       `yaml:"material"`
}

// Manifest lists the model file and its regions.
type Manifest struct {
	Model   string      `yaml:"model"`
	Regions []RegionDef `yaml:"regions"`
}

// DefaultManifest is the layout of the shipped shoe model: nodes shoe, shoe_1..shoe_7
// carrying the materials named after each region.
func DefaultManifest() Manifest {
	m := Manifest{Model: "assets/shoe.glb"}
	for i, r := range store.Regions {
		node := "shoe"
		if i > 0 {
			node = fmt.Sprintf("shoe_%d", i)
		}
		m.Regions = append(m.Regions, RegionDef{Region: r, Node: node, Material: string(r)})
	}
	return m
}

// LoadManifest reads a YAML manifest. A missing file yields DefaultManifest.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultManifest(), nil
		}
		return Manifest{}, fmt.Errorf("asset: read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest YAML.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("asset: parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks that every region appears exactly once with a material name.
func (m Manifest) Validate() error {
	seen := make(map[store.Region]bool, len(m.Regions))
	for _, def := range m.Regions {
		if !def.Region.Valid() {
			return fmt.Errorf("asset: %w: %q: %w", ErrBadManifest, def.Region, store.ErrUnknownRegion)
		}
		if def.Material == "" {
			return fmt.Errorf("asset: %w: region %s has no material", ErrBadManifest, def.Region)
		}
		if seen[def.Region] {
			return fmt.Errorf("asset: %w: region %s listed twice", ErrBadManifest, def.Region)
		}
		seen[def.Region] = true
	}
	for _, r := range store.Regions {
		if !seen[r] {
			return fmt.Errorf("asset: %w: region %s not listed", ErrBadManifest, r)
		}
	}
	return nil
}

// byMaterial returns the definition whose material is name.
func (m Manifest) byMaterial(name string) (RegionDef, bool) {
	for _, def := range m.Regions {
		if def.Material == name {
			return def, true
		}
	}
	return RegionDef{}, false
}

// byNode returns the definition whose node is name.
func (m Manifest) byNode(name string) (RegionDef, bool) {
	if name == "" {
		return RegionDef{}, false
	}
	for _, def := range m.Regions {
		if def.Node == name {
			return def, true
		}
	}
	return RegionDef{}, false
}
