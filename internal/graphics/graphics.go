package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configure the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Init opens the window. GPU resources (models, shaders, textures) can only be created after it.
// The window is resizable and multisampled; Fullscreen uses the monitor's size.
// ESC is used by the console, so it does not close the window.
func Init(opts Options) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen || w <= 0 || h <= 0 {
		// Monitor size is only known once raylib has initialized GLFW; 0 lets raylib pick it.
		w, h = 0, 0
	}
	rl.InitWindow(w, h, opts.Title)
	rl.SetExitKey(rl.KeyNull)
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))
}

// Run drives the main loop until the window is closed, then closes it. Each frame it calls
// update (input, animation, export polling), then clears the screen and calls draw.
func Run(update, draw func()) {
	defer rl.CloseWindow()
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}
