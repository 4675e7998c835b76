package ui

import (
	"github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"kicks-lab/internal/picker"
)

// Title and Credit are the fixed texts of the side panel. RepoURL is opened by the link
// next to the title.
const (
	Title   = "Kicks Lab"
	Credit  = "Made By Suhayb"
	RepoURL = "https://github.com/Swebi/KicksLab"
)

// hueBarWidth is the space raygui's color picker draws to the right of its bounds.
const hueBarWidth = 30

// SidePanel is the styled panel beside the viewport: title, picker label, color picker,
// hex readout, Download button, credit and status line.
type SidePanel struct {
	engine *Engine
	picker *picker.Panel

	background *Node
	title      *Node
	repo       *Node
	label      *Node
	area       *Node
	hex        *Node
	download   *Node
	credit     *Node
	status     *Node

	dragging bool
}

// NewSidePanel builds the panel nodes over engine and binds them to p.
func NewSidePanel(engine *Engine, p *picker.Panel) *SidePanel {
	sp := &SidePanel{
		engine:     engine,
		picker:     p,
		background: NewNode("panel", "panel", "", ""),
		title:      NewNode("label", "title", "title", Title),
		repo:       NewNode("button", "repo", "repo", "GitHub"),
		label:      NewNode("label", "label", "picker-label", picker.Placeholder),
		area:       NewNode("area", "picker", "picker", ""),
		hex:        NewNode("label", "hex", "hex", ""),
		download:   NewNode("button", "download", "download", "Download"),
		credit:     NewNode("label", "credit", "credit", Credit),
		status:     NewNode("label", "status", "status", ""),
	}
	for _, n := range []*Node{sp.background, sp.title, sp.repo, sp.label, sp.area, sp.hex, sp.download, sp.credit, sp.status} {
		engine.AddNode(n)
	}
	return sp
}

// SetStatus shows msg on the status line; an empty msg hides it.
func (sp *SidePanel) SetStatus(msg string) {
	sp.status.Text = msg
}

// Draw draws the panel inside bounds and handles its widgets. It reports whether the
// Download button was clicked this frame.
func (sp *SidePanel) Draw(bounds rl.Rectangle) (download bool) {
	sp.sync()
	sp.engine.Draw(bounds)
	if sp.picker.Active() {
		sp.drawPicker()
	} else {
		sp.dragging = false
	}

	released := rl.IsMouseButtonReleased(rl.MouseButtonLeft)
	mouse := rl.GetMousePosition()
	if released && sp.repo.Contains(mouse) {
		rl.OpenURL(RepoURL)
	}
	return released && sp.download.Contains(mouse)
}

// sync copies the picker state into the node texts and visibility.
func (sp *SidePanel) sync() {
	active := sp.picker.Active()
	sp.label.Text = sp.picker.Label()
	sp.hex.Text = sp.picker.Hex()
	sp.hex.Hidden = !active
	sp.area.Hidden = !active
	sp.status.Hidden = sp.status.Text == ""
}

// drawPicker draws the raygui color picker. raygui returns a color every frame, so it is
// applied only while a drag that started inside the picker is held.
func (sp *SidePanel) drawPicker() {
	cur, _ := sp.picker.Value()
	b := sp.area.Bounds
	hit := rl.NewRectangle(b.X, b.Y, b.Width+hueBarWidth, b.Height)
	sp.dragging = nextDragging(sp.dragging,
		rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		rl.IsMouseButtonDown(rl.MouseButtonLeft),
		rl.CheckCollisionPointRec(rl.GetMousePosition(), hit))

	out := raygui.ColorPicker(b, "", toRL(cur))
	sp.applyPicked(out)
}

// nextDragging starts a drag on a press inside the picker and ends it once the button is up.
func nextDragging(dragging, pressed, down, inside bool) bool {
	if pressed && inside {
		dragging = true
	}
	return dragging && down
}

// applyPicked writes out to the selected region while dragging. It reports whether the
// store changed.
func (sp *SidePanel) applyPicked(out rl.Color) bool {
	if !sp.dragging {
		return false
	}
	out.A = 255
	return sp.picker.Apply(fromRL(out))
}
