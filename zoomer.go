package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"screen-zoomer/canvas"
	"screen-zoomer/capture"
	"screen-zoomer/input"
	"screen-zoomer/interpolation"
	"screen-zoomer/ui"
)

// session is one screenshot being magnified. The camera is rebuilt with every capture.
type session struct {
	shot    *capture.Screenshot
	texture *ebiten.Image
	camera  *canvas.Camera
	scripts []interface{ Err() error }
}

// scriptErr returns the first runtime error raised by the interpolation script.
func (s *session) scriptErr() error {
	for _, sc := range s.scripts {
		if err := sc.Err(); err != nil {
			return err
		}
	}
	return nil
}

type Zoomer struct {
	cfg    Config
	logger *log.Logger

	source capture.Source
	bounds image.Rectangle
	// hideForCapture minimizes the window while recapturing so it is not in the shot.
	hideForCapture bool

	pending     *capture.Screenshot
	session     *session
	highlighter *canvas.Highlighter
	shader      *ebiten.Shader

	// Sub-systems
	input   *input.System
	ui      *ui.UISystem
	face    font.Face
	watcher *ConfigWatcher

	screenWidth  int
	screenHeight int
	lastUpdate   time.Time
	recaptureIn  int
	quit         bool

	screenshotRequested bool
	clipboardRequested  bool
	exportDir           string
}

// NewZoomer prepares a zoomer for shot. The session itself starts on the first Update,
// once the window size is known.
func NewZoomer(cfg Config, logger *log.Logger, source capture.Source, bounds image.Rectangle, shot *capture.Screenshot) *Zoomer {
	z := &Zoomer{
		cfg:         cfg,
		logger:      logger,
		source:      source,
		bounds:      bounds,
		pending:     shot,
		highlighter: canvas.NewHighlighter(cfg.Highlighter.Radius, cfg.Highlighter.Smoothing),
		face:        LoadUIFont(logger, UIFontPath, UIFontSize),
	}
	if _, ok := source.(capture.Desktop); ok {
		z.hideForCapture = true
	}
	if wd, err := os.Getwd(); err == nil {
		z.exportDir = wd
	}

	z.input = input.NewSystem(z)
	z.ui = ui.NewUISystem(
		func() font.Face { return z.face },
		func() (int, int) { return z.screenWidth, z.screenHeight },
		func() { z.zoomAroundCentre(ButtonZoomStep) },
		func() { z.zoomAroundCentre(1 / ButtonZoomStep) },
		func() { z.highlighter.Toggle() },
		DrawTextLines,
	)
	return z
}

// newSessionCamera builds the camera for a session. A configured interpolation script
// replaces the exponential smoothing; if it fails to load the smoothing is kept.
func newSessionCamera(cfg Config, arr float32, logger *log.Logger) (*canvas.Camera, []interface{ Err() error }) {
	cc := cfg.CameraConfig(arr)
	if cfg.InterpolationScript == "" {
		return canvas.NewCamera(cc), nil
	}

	pos, zoom, err := loadInterpolationScript(cfg.InterpolationScript)
	if err != nil {
		logger.Printf("interpolation script: %v; using exponential smoothing", err)
		return canvas.NewCamera(cc), nil
	}
	logger.Printf("camera driven by %s", cfg.InterpolationScript)
	return canvas.NewCameraWith(cc, pos, zoom), []interface{ Err() error }{pos, zoom}
}

func loadInterpolationScript(path string) (*interpolation.ScriptedInterpolation[mgl32.Vec2], *interpolation.ScriptedInterpolation[interpolation.Vec1], error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	// each interpolator gets its own thread
	pos, err := interpolation.NewScriptedInterpolation[mgl32.Vec2](path, string(src))
	if err != nil {
		return nil, nil, err
	}
	zoom, err := interpolation.NewScriptedInterpolation[interpolation.Vec1](path, string(src))
	if err != nil {
		return nil, nil, err
	}
	return pos, zoom, nil
}

func (z *Zoomer) startSession(shot *capture.Screenshot) {
	if z.shader == nil {
		sh, err := ebiten.NewShader(highlightShader)
		if err != nil {
			// the source is a constant, so this only fails on a broken build
			panic(fmt.Sprintf("highlight shader: %v", err))
		}
		z.shader = sh
	}
	if z.session != nil {
		z.session.texture.Deallocate()
	}

	vp := canvas.Viewport{Width: z.screenWidth, Height: z.screenHeight, ImageAspect: shot.AspectRatio()}
	cam, scripts := newSessionCamera(z.cfg, vp.AspectRatioRatio(), z.logger)
	z.session = &session{
		shot:    shot,
		texture: ebiten.NewImageFromImage(shot.Image()),
		camera:  cam,
		scripts: scripts,
	}
	z.lastUpdate = time.Now()
	z.logger.Printf("session started: %dx%d screenshot in a %dx%d window", shot.Width, shot.Height, z.screenWidth, z.screenHeight)
}

func (z *Zoomer) recapture() {
	if z.hideForCapture {
		defer ebiten.RestoreWindow()
	}
	shot, err := z.source.Capture(z.bounds)
	if err != nil {
		z.logger.Printf("recapture failed, keeping the old screenshot: %v", err)
		z.ui.Debug.SetError(err.Error())
		return
	}
	z.startSession(shot)
}

func (z *Zoomer) viewport() canvas.Viewport {
	vp := canvas.Viewport{Width: z.screenWidth, Height: z.screenHeight}
	if z.session != nil {
		vp.ImageAspect = z.session.shot.AspectRatio()
	}
	return vp
}

func (z *Zoomer) zoomAroundCentre(multiplier float32) {
	if z.session == nil {
		return
	}
	z.session.camera.Zoom(multiplier, mgl32.Vec2{})
}

// applyReload takes a re-read config. Highlighter settings apply at once; camera
// settings wait for the next session.
func (z *Zoomer) applyReload(r ConfigReload) {
	if r.Err != nil {
		z.logger.Printf("config reload rejected: %v", r.Err)
		z.ui.Debug.SetError("config: " + r.Err.Error())
		return
	}
	z.ui.Debug.Clear()

	enabled := z.highlighter.Enabled()
	z.highlighter = canvas.NewHighlighter(r.Config.Highlighter.Radius, r.Config.Highlighter.Smoothing)
	z.highlighter.SetEnabled(enabled)
	z.cfg = r.Config
	z.logger.Println("config reloaded; camera settings apply on the next capture (F5)")
}

func (z *Zoomer) pollWatcher() {
	if z.watcher == nil {
		return
	}
	for {
		select {
		case r := <-z.watcher.Reloads:
			z.applyReload(r)
		case err := <-z.watcher.Errors:
			z.logger.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

// tick advances every smoothed value by dt seconds.
func (z *Zoomer) tick(dt float32) {
	s := z.session
	s.camera.Update(dt)
	z.highlighter.Update(dt)
	if err := s.scriptErr(); err != nil {
		z.ui.Debug.SetError("interpolation script: " + err.Error())
	}
}

func (z *Zoomer) Update() error {
	if z.quit {
		return ebiten.Termination
	}
	z.pollWatcher()

	if z.screenWidth == 0 || z.screenHeight == 0 {
		return nil
	}
	if z.pending != nil {
		z.startSession(z.pending)
		z.pending = nil
	}
	if z.recaptureIn > 0 {
		z.recaptureIn--
		if z.recaptureIn == 0 {
			z.recapture()
		}
		return nil
	}

	now := time.Now()
	dt := float32(now.Sub(z.lastUpdate).Seconds())
	z.lastUpdate = now

	z.ui.Update()
	z.input.Update()
	z.tick(dt)

	mx, my := ebiten.CursorPosition()
	z.ui.Debug.SetLines(debugLines(z.viewport(), z.session.camera, z.highlighter, mgl32.Vec2{float32(mx), float32(my)}, ebiten.ActualTPS())...)

	if z.quit {
		return ebiten.Termination
	}
	return nil
}

func (z *Zoomer) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	if z.session == nil || z.recaptureIn > 0 {
		return
	}
	z.drawScreenshot(screen)

	// exports leave the UI out
	if z.screenshotRequested || z.clipboardRequested {
		img := snapshot(screen)
		if z.screenshotRequested {
			z.screenshotRequested = false
			if path, err := savePNG(img, z.exportDir, time.Now()); err != nil {
				z.logger.Println("screenshot error:", err)
			} else {
				z.logger.Println("screenshot saved as", path)
			}
		}
		if z.clipboardRequested {
			z.clipboardRequested = false
			if err := copyPNG(img); err != nil {
				z.logger.Println("clipboard error:", err)
			} else {
				z.logger.Println("view copied to clipboard")
			}
		}
	}

	z.ui.Draw(screen)
}

func (z *Zoomer) Layout(outsideWidth, outsideHeight int) (int, int) {
	z.screenWidth = outsideWidth
	z.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// input.Host

func (z *Zoomer) Camera() *canvas.Camera           { return z.session.camera }
func (z *Zoomer) Highlighter() *canvas.Highlighter { return z.highlighter }
func (z *Zoomer) PixelToScreen(px mgl32.Vec2) mgl32.Vec2 {
	return z.viewport().PixelToScreen(px)
}
func (z *Zoomer) IsMouseOverUI(mx, my int) bool { return z.ui.IsMouseOver(mx, my) }
func (z *Zoomer) ToggleDebug()                  { z.ui.Debug.Toggle() }
func (z *Zoomer) RequestScreenshot()            { z.screenshotRequested = true }
func (z *Zoomer) RequestClipboardCopy()         { z.clipboardRequested = true }
func (z *Zoomer) Quit()                         { z.quit = true }

// Recapture schedules a new screenshot. When capturing the desktop the window is
// minimized first and the capture waits for it to disappear.
func (z *Zoomer) Recapture() {
	if !z.hideForCapture {
		z.recaptureIn = 1
		return
	}
	ebiten.MinimizeWindow()
	z.recaptureIn = RecaptureDelayTicks
}

func debugLines(vp canvas.Viewport, cam *canvas.Camera, hl *canvas.Highlighter, cursor mgl32.Vec2, tps float64) []string {
	ndc := vp.PixelToScreen(cursor)
	radius := "off"
	if hl.Enabled() {
		radius = fmt.Sprintf("%.1f -> %.1f", hl.Radius(), hl.TargetRadius())
	}
	return []string{
		fmt.Sprintf("pixel:    %s", fmtVec(cursor)),
		fmt.Sprintf("ndc:      %s", fmtVec(ndc)),
		fmt.Sprintf("camera:   %s", fmtVec(cam.ScreenToCameraSpace(ndc))),
		fmt.Sprintf("world:    %s", fmtVec(cam.ScreenToWorldSpace(ndc))),
		fmt.Sprintf("uv:       %s", fmtVec(vp.PixelToUV(cam, cursor))),
		fmt.Sprintf("position: %s", fmtVec(cam.Position())),
		fmt.Sprintf("zoom:     %.3f -> %.3f", cam.ZoomFactor(), cam.TargetZoomFactor()),
		fmt.Sprintf("radius:   %s", radius),
		fmt.Sprintf("tps:      %.1f", tps),
	}
}

func fmtVec(v mgl32.Vec2) string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X(), v.Y())
}
