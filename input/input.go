package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"screen-zoomer/canvas"
)

const (
	// ZoomTicksDivisor turns wheel ticks into a zoom delta: one notch zooms by 10%.
	ZoomTicksDivisor = 10.0
	// HighlighterResizeRate scales a wheel delta into a highlighter radius change.
	HighlighterResizeRate = 2.0
	// KeyZoomStep is the zoom applied per tick while a zoom key is held.
	KeyZoomStep = 0.02
)

// Host defines the callbacks the input system needs from the zoomer.
type Host interface {
	Camera() *canvas.Camera
	Highlighter() *canvas.Highlighter
	// PixelToScreen converts window pixels to NDC.
	PixelToScreen(px mgl32.Vec2) mgl32.Vec2
	IsMouseOverUI(mx, my int) bool
	ToggleDebug()
	Recapture()
	RequestScreenshot()
	RequestClipboardCopy()
	Quit()
}

// Frame is the input observed during one tick.
type Frame struct {
	Cursor mgl32.Vec2 // window pixels

	LeftPressed     bool
	LeftJustPressed bool

	WheelY float64
	Ctrl   bool

	ZoomInHeld, ZoomOutHeld bool
	JustPressed             []ebiten.Key
}

func (f Frame) pressed(k ebiten.Key) bool {
	for _, key := range f.JustPressed {
		if key == k {
			return true
		}
	}
	return false
}

// ReadFrame polls ebiten for the current tick's input.
func ReadFrame() Frame {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Frame{
		Cursor:          mgl32.Vec2{float32(mx), float32(my)},
		LeftPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		WheelY:          dy,
		Ctrl:            ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
		ZoomInHeld:      ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd),
		ZoomOutHeld:     ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract),
		JustPressed:     inpututil.AppendJustPressedKeys(nil),
	}
}

type System struct {
	host Host

	// Panning state
	isPanning       bool
	lastMouseScreen mgl32.Vec2
}

func NewSystem(h Host) *System {
	return &System{host: h}
}

func (s *System) IsPanning() bool { return s.isPanning }

func (s *System) Update() {
	s.Handle(ReadFrame())
}

// Handle applies one frame of input. It only moves camera and highlighter targets;
// the host advances them afterwards.
func (s *System) Handle(f Frame) {
	s.handleControlKeys(f)
	s.handleZoom(f)
	s.handlePanning(f)
}

func (s *System) handleControlKeys(f Frame) {
	h := s.host
	switch {
	case f.pressed(ebiten.KeyEscape):
		h.Quit()
	case f.pressed(ebiten.KeyF2):
		h.ToggleDebug()
	case f.pressed(ebiten.KeyF5):
		h.Recapture()
	case f.pressed(ebiten.KeyF12):
		h.RequestScreenshot()
	case f.pressed(ebiten.KeyC) && f.Ctrl:
		h.RequestClipboardCopy()
	case f.pressed(ebiten.KeyC):
		h.Highlighter().Toggle()
	}
}

func (s *System) handleZoom(f Frame) {
	cam := s.host.Camera()

	if f.WheelY != 0 {
		delta := float32(f.WheelY / ZoomTicksDivisor)

		if hl := s.host.Highlighter(); f.Ctrl && hl.Enabled() {
			hl.SetRadius(hl.TargetRadius() * (1 + delta*HighlighterResizeRate))
			return
		}
		cam.Zoom(1+delta, s.host.PixelToScreen(f.Cursor))
	}

	// Keyboard zoom keeps the window centre fixed
	if f.ZoomInHeld {
		cam.Zoom(1+KeyZoomStep, mgl32.Vec2{})
	}
	if f.ZoomOutHeld {
		cam.Zoom(1/(1+KeyZoomStep), mgl32.Vec2{})
	}
}

func (s *System) handlePanning(f Frame) {
	cursor := s.host.PixelToScreen(f.Cursor)

	if !s.isPanning {
		if f.LeftJustPressed && !s.host.IsMouseOverUI(int(f.Cursor.X()), int(f.Cursor.Y())) {
			s.isPanning = true
			s.lastMouseScreen = cursor
		}
		return
	}

	if f.LeftPressed {
		s.host.Camera().Translate(cursor.Sub(s.lastMouseScreen))
		s.lastMouseScreen = cursor
		return
	}

	// Drag ended: pull the image back into view.
	s.isPanning = false
	s.host.Camera().ClampMeDaddy()
}
