// Package app wires the configurator together: store, model, picker panel, console and
// export, driven by the raylib frame loop.
package app

import (
	"context"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/sirupsen/logrus"

	"kicks-lab/assets"
	"kicks-lab/internal/appconfig"
	"kicks-lab/internal/asset"
	"kicks-lab/internal/commands"
	"kicks-lab/internal/debug"
	"kicks-lab/internal/download"
	"kicks-lab/internal/env"
	"kicks-lab/internal/environment"
	"kicks-lab/internal/export"
	"kicks-lab/internal/fonts"
	"kicks-lab/internal/graphics"
	"kicks-lab/internal/interaction"
	"kicks-lab/internal/logger"
	"kicks-lab/internal/palette"
	"kicks-lab/internal/picker"
	"kicks-lab/internal/pointer"
	"kicks-lab/internal/scene"
	"kicks-lab/internal/shadow"
	"kicks-lab/internal/shoe"
	"kicks-lab/internal/store"
	"kicks-lab/internal/terminal"
	"kicks-lab/internal/ui"
	"kicks-lab/internal/ui/layout"
	"kicks-lab/internal/ui/style"
)

const (
	windowTitle     = "Kicks Lab"
	fetchTimeout    = 60 * time.Second
	statusUnloaded  = "model unavailable"
	exportStatusTTL = 4 * time.Second
)

// Options are the command-line inputs. Empty fields keep the prefs value.
type Options struct {
	ConfigPath string
	EnvFile    string
	AssetPath  string
	LogLevel   string
}

// LoadPrefs reads .env, the prefs file and KICKS_* overrides, then applies flag overrides.
func LoadPrefs(opts Options) (appconfig.Prefs, error) {
	if err := env.Load(opts.EnvFile); err != nil {
		return appconfig.Prefs{}, err
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = appconfig.DefaultPath
	}
	prefs, err := appconfig.Load(opts.ConfigPath)
	if err != nil {
		return appconfig.Prefs{}, err
	}
	if opts.AssetPath != "" {
		prefs.ModelPath = opts.AssetPath
	}
	if opts.LogLevel != "" {
		prefs.LogLevel = opts.LogLevel
	}
	return prefs, nil
}

// App holds every component of the running configurator.
type App struct {
	prefs     appconfig.Prefs
	prefsPath string
	log       *logger.Logger
	entry     *logrus.Entry

	store      *store.Store
	palette    *palette.Palette
	picker     *picker.Panel
	controller *interaction.Controller
	dispatcher *pointer.Dispatcher

	scene    *scene.Scene
	shoe     *shoe.Shoe
	light    shoe.Light
	modelErr error

	ui    *ui.Engine
	panel *ui.SidePanel
	term  *terminal.Terminal
	dbg   *debug.Debug

	exporter    *export.Exporter
	exportMsg   string
	exportMsgAt time.Time

	cursorTex rl.Texture2D
	cursorRev uint64

	start    time.Time
	viewport rl.Rectangle
	panelBox rl.Rectangle
}

// Run loads prefs, opens the window and runs the configurator until the window is closed.
func Run(ctx context.Context, opts Options) error {
	prefs, err := LoadPrefs(opts)
	if err != nil {
		return err
	}
	log := logger.New(prefs.LogPath, prefs.LogLevel)
	defer log.Close()

	a := &App{
		prefs:     prefs,
		prefsPath: opts.ConfigPath,
		log:       log,
		entry:     log.Component("app"),
		store:     store.New(),
	}
	if a.prefsPath == "" {
		a.prefsPath = appconfig.DefaultPath
	}

	modelPath, manifest := a.resolveAsset(ctx)

	graphics.Init(graphics.Options{
		Title:      windowTitle,
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
	})
	a.build(modelPath, manifest)
	defer a.unload()

	a.entry.Info("ready")
	graphics.Run(a.update, a.draw)
	return nil
}

// resolveAsset finds the model file, downloading it first when the path is a URL, and
// loads the manifest. Failures are recorded and leave the model unloaded.
func (a *App) resolveAsset(ctx context.Context) (string, asset.Manifest) {
	manifest, err := asset.LoadManifest(a.prefs.ManifestPath)
	if err != nil {
		a.entry.WithError(err).Warn("manifest unreadable, using built-in layout")
		manifest = asset.DefaultManifest()
	}
	modelPath := a.prefs.ModelPath
	if modelPath == "" {
		modelPath = manifest.Model
	}
	if download.IsRemote(modelPath) {
		fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		saved, err := download.Fetcher{}.Fetch(fctx, modelPath, a.prefs.CacheDir)
		if err != nil {
			a.modelErr = err
			a.entry.WithError(err).Error("model download failed")
			return "", manifest
		}
		a.entry.WithField("path", saved).Info("model downloaded")
		modelPath = saved
	}
	return modelPath, manifest
}

func (a *App) build(modelPath string, manifest asset.Manifest) {
	a.start = time.Now()
	a.palette = palette.New(a.store, a.log.Component("palette"))
	a.picker = picker.New(a.store)
	a.controller = interaction.New(a.store, a.log.Component("interaction"))
	a.dispatcher = pointer.NewDispatcher(a.controller)

	a.scene = scene.New(rl.GetScreenWidth())
	a.scene.SetGridVisible(a.prefs.GridVisible)
	a.light = shoe.DefaultLight.WithEnvironment(environment.Resolve(environment.Paths, a.log.Component("environment")))
	if a.modelErr == nil {
		s, err := shoe.Load(modelPath, manifest, a.palette, a.log.Component("shoe"))
		if err != nil {
			a.modelErr = err
			a.entry.WithError(err).Error("model unavailable")
		} else {
			a.shoe = s
		}
	}

	a.ui = ui.New()
	if err := a.ui.LoadCSS(a.prefs.StylesheetPath); err != nil {
		a.entry.WithError(err).Warn("stylesheet not loaded, using built-in panel style")
		sheet, perr := style.Parse(assets.PanelCSS)
		if perr != nil {
			a.entry.WithError(perr).Error("built-in stylesheet invalid")
		}
		a.ui.SetStylesheet(sheet)
	}
	a.panel = ui.NewSidePanel(a.ui, a.picker)
	if a.modelErr != nil {
		a.panel.SetStatus(statusUnloaded)
	}

	reg := commands.NewRegistry(a.log.ConsoleWriter())
	commands.RegisterConfigurator(reg, a.store, a)
	a.term = terminal.New(a.log, reg)

	a.dbg = debug.New()
	a.dbg.SetShowFPS(a.prefs.ShowFPS)
	a.dbg.SetShowMemAlloc(a.prefs.ShowMemAlloc)

	if a.prefs.FontName != "" {
		if path, err := fonts.FindFont(a.prefs.FontName); err != nil {
			a.entry.WithField("font", a.prefs.FontName).Warn("font not found, using default")
		} else if err := a.ui.LoadFont(path); err != nil {
			a.entry.WithError(err).WithField("font", path).Warn("font not loaded")
		} else {
			a.term.SetFont(a.ui.Font())
			a.dbg.SetFont(a.ui.Font())
		}
	}

	a.exporter = a.newExporter()
}

func (a *App) newExporter() *export.Exporter {
	dir := a.prefs.ResolveDownloadDir()
	fs := osfs.NewFS()
	opts := export.Options{FS: fs, Delay: a.prefs.ExportDelay()}
	abs, err := filepath.Abs(dir)
	if err == nil {
		opts.Dir, err = fs.FromOSPath(abs)
	}
	if err != nil {
		a.entry.WithError(err).WithField("dir", dir).Warn("download dir unusable, saving to working directory")
		opts.Dir = ""
		if wd, werr := filepath.Abs("."); werr == nil {
			opts.Dir, _ = fs.FromOSPath(wd)
		}
	}
	a.entry.WithField("dir", dir).Debug("screenshots directory")
	return export.New(a.scene, a.scene, opts, a.log.Component("export"))
}

func (a *App) layout() {
	vp, panel := layout.Split(rl.GetScreenWidth(), rl.GetScreenHeight())
	a.viewport = rl.NewRectangle(float32(vp.Min.X), float32(vp.Min.Y), float32(vp.Dx()), float32(vp.Dy()))
	a.panelBox = rl.NewRectangle(float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()))
}

func (a *App) update() {
	a.layout()
	a.term.Update()

	t := float32(time.Since(a.start).Seconds())
	a.scene.Update(a.viewport)
	if a.shoe != nil {
		a.shoe.Update(t)
		a.updatePointer()
	}

	now := time.Now()
	for _, res := range a.exporter.Poll(now) {
		if res.Err != nil {
			a.exportMsg = "export failed"
		} else {
			a.exportMsg = "saved " + export.FileName
		}
		a.exportMsgAt = now
	}
	switch {
	case a.modelErr != nil:
		a.panel.SetStatus(statusUnloaded)
	case a.exportMsg != "" && now.Sub(a.exportMsgAt) < exportStatusTTL:
		a.panel.SetStatus(a.exportMsg)
	default:
		a.panel.SetStatus("")
	}

	hover, _ := a.controller.Hover()
	sel, _ := a.store.Selection()
	a.dbg.SetPointer(string(hover), string(sel))
}

// updatePointer hit-tests the model when the pointer moves or is pressed inside the
// viewport. Over the panel the scene sees no intersections.
func (a *App) updatePointer() {
	mouse := rl.GetMousePosition()
	inside := rl.CheckCollisionPointRec(mouse, a.viewport)
	at := pointer.Point{X: mouse.X, Y: mouse.Y}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.dispatcher.Up(at)
	}
	moved := rl.GetMouseDelta() != rl.Vector2{}
	pressed := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	if !moved && !pressed {
		return
	}
	var hits []pointer.Hit
	if inside {
		hits = a.shoe.Pick(a.scene.Ray(mouse, a.viewport))
	}
	a.dispatcher.Move(hits)
	if pressed && inside {
		a.dispatcher.Down(hits, at)
	}
}

func (a *App) draw() {
	var shadowSize float32 = 1
	if a.shoe != nil {
		shadowSize = shadow.Scale(a.shoe.Pose().PositionY)
	}
	a.scene.Begin(a.viewport, shadowSize)
	if a.shoe != nil {
		a.shoe.Draw(a.scene.Camera.Position, a.light)
	}
	a.scene.End()
	a.scene.Draw(a.viewport)
	if a.shoe == nil {
		drawCentered(statusUnloaded, a.viewport)
	}

	if a.panel.Draw(a.panelBox) {
		a.Export()
	}
	a.dbg.Draw(a.viewport)
	a.term.Draw()
	a.drawCursor()
}

// drawCursor draws the hover icon at the pointer while it is over the viewport; elsewhere
// the system cursor is shown.
func (a *App) drawCursor() {
	icon, custom := a.controller.Cursor()
	mouse := rl.GetMousePosition()
	if !custom || !rl.CheckCollisionPointRec(mouse, a.viewport) {
		if rl.IsCursorHidden() {
			rl.ShowCursor()
		}
		return
	}
	if rev := a.controller.CursorRevision(); rev != a.cursorRev || a.cursorTex.ID == 0 {
		if a.cursorTex.ID != 0 {
			rl.UnloadTexture(a.cursorTex)
		}
		img := rl.NewImageFromImage(icon.Raster())
		a.cursorTex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.cursorRev = rev
	}
	if !rl.IsCursorHidden() {
		rl.HideCursor()
	}
	rl.DrawTexture(a.cursorTex, int32(mouse.X), int32(mouse.Y), rl.White)
}

func drawCentered(text string, box rl.Rectangle) {
	const size = 24
	w := rl.MeasureText(text, size)
	x := int32(box.X+box.Width/2) - w/2
	y := int32(box.Y+box.Height/2) - size/2
	rl.DrawText(text, x, y, size, rl.Gray)
}

func (a *App) unload() {
	if a.cursorTex.ID != 0 {
		rl.UnloadTexture(a.cursorTex)
	}
	if a.shoe != nil {
		a.shoe.Unload()
	}
	a.palette.Close()
	a.scene.Unload()
	a.ui.Unload()
}

// Export resets the camera and schedules a screenshot.
func (a *App) Export() {
	a.exporter.Trigger(time.Now())
}

// ResetCamera puts the camera back to its initial orientation.
func (a *App) ResetCamera() {
	a.scene.Reset()
}

// SetShowFPS toggles the FPS overlay and persists the choice.
func (a *App) SetShowFPS(show bool) {
	a.dbg.SetShowFPS(show)
	a.savePrefs(func(p *appconfig.Prefs) { p.ShowFPS = show })
}

// SetGridVisible toggles the editor grid and persists the choice.
func (a *App) SetGridVisible(visible bool) {
	a.scene.SetGridVisible(visible)
	a.savePrefs(func(p *appconfig.Prefs) { p.GridVisible = visible })
}

// savePrefs applies edit to the running prefs and to the prefs file. The file is edited
// from its own contents so env and flag overrides stay out of it.
func (a *App) savePrefs(edit func(*appconfig.Prefs)) {
	next := a.prefs.Clone()
	edit(&next)
	a.prefs = next
	if err := appconfig.Update(a.prefsPath, edit); err != nil {
		a.entry.WithError(err).WithField("path", a.prefsPath).Warn("prefs not saved")
	}
}
