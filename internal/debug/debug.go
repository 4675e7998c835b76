package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, pointer state). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	hover        string
	selected     string
	pointerText  string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter and pointer readout are drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetPointer records the hovered and selected region names ("" for none) for the readout.
func (d *Debug) SetPointer(hover, selected string) {
	if hover == d.hover && selected == d.selected && d.pointerText != "" {
		return
	}
	d.hover, d.selected = hover, selected
	d.pointerText = fmt.Sprintf("hover: %s  selected: %s", orNone(hover), orNone(selected))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Draw renders any enabled debug overlays at the top-right of area. Call after the scene and
// panel in the draw loop. Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(area rl.Rectangle) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	right := area.X + area.Width - fpsPadding
	y := area.Y + fpsPadding

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, right, y)
		y += fpsLineHeight
		d.drawRight(d.pointerText, right, y)
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, right, y)
	}
}

// drawRight draws text ending at x.
func (d *Debug) drawRight(text string, x, y float32) {
	if text == "" {
		return
	}
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(x-rl.MeasureTextEx(d.font, text, sz, 1).X, y)
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.DarkGreen)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, int32(x)-w, int32(y), fpsFontSize, rl.DarkGreen)
}
