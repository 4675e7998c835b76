package store

import "errors"

// Region names one independently colorable part of the shoe. The value is the
// material name in the model asset.
type Region string

const (
	Laces   Region = "laces"
	Mesh    Region = "mesh"
	Caps    Region = "caps"
	Inner   Region = "inner"
	Sole    Region = "sole"
	Stripes Region = "stripes"
	Band    Region = "band"
	Patch   Region = "patch"
)

// DefaultColor is the color every region starts with.
const DefaultColor = "#fff"

// Regions lists the eight regions in asset material order.
var Regions = [...]Region{Laces, Mesh, Caps, Inner, Sole, Stripes, Band, Patch}

// ErrUnknownRegion is returned when a name is not one of Regions.
var ErrUnknownRegion = errors.New("unknown region")

// ParseRegion returns the Region for name, or false if name is not one of the eight.
func ParseRegion(name string) (Region, bool) {
	for _, r := range Regions {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is one of the eight regions.
func (r Region) Valid() bool {
	_, ok := ParseRegion(string(r))
	return ok
}

func (r Region) String() string {
	return string(r)
}
