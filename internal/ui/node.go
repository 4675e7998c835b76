package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button area, etc. It has optional class and id
// for CSS matching, bounds (resolved each draw against the container), and optional text.
type Node struct {
	Type   string // "panel", "label", "button", "area"
	Class  string // e.g. "title" for .title
	ID     string // e.g. "picker" for #picker
	Bounds rl.Rectangle
	Text   string
	Hidden bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Contains reports whether p is inside the node's last drawn bounds.
func (n *Node) Contains(p rl.Vector2) bool {
	return !n.Hidden && rl.CheckCollisionPointRec(p, n.Bounds)
}
