//go:build linux || freebsd

package capture

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// X11Source grabs the root window of the default X screen.
type X11Source struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
}

// NewDesktop connects to the X server named by $DISPLAY.
func NewDesktop() (Desktop, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("capture: connect to X server: %w", err)
	}
	return &X11Source{conn: conn, screen: xproto.Setup(conn).DefaultScreen(conn)}, nil
}

func (s *X11Source) Close() error {
	s.conn.Close()
	return nil
}

// Bounds is the size of the root window.
func (s *X11Source) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.screen.WidthInPixels), int(s.screen.HeightInPixels))
}

func (s *X11Source) Capture(bounds image.Rectangle) (*Screenshot, error) {
	bounds = bounds.Intersect(s.Bounds())
	if bounds.Empty() {
		return nil, fmt.Errorf("capture: %v is outside the X screen", bounds)
	}

	reply, err := xproto.GetImage(s.conn, xproto.ImageFormatZPixmap, xproto.Drawable(s.screen.Root),
		int16(bounds.Min.X), int16(bounds.Min.Y), uint16(bounds.Dx()), uint16(bounds.Dy()), 0xffffffff).Reply()
	if err != nil {
		return nil, fmt.Errorf("capture: get image: %w", err)
	}

	w, h := bounds.Dx(), bounds.Dy()
	if len(reply.Data) < w*h*BytesPerPixel {
		return nil, fmt.Errorf("capture: depth %d images are not supported", reply.Depth)
	}
	stride := len(reply.Data) / h
	BGRAToRGBA(reply.Data, w, h, stride)
	return &Screenshot{Width: w, Height: h, Stride: stride, Pix: reply.Data}, nil
}

// Monitors lists the active CRTCs. Without RandR the whole root window is one monitor.
func (s *X11Source) Monitors() ([]Monitor, error) {
	whole := []Monitor{{Width: int(s.screen.WidthInPixels), Height: int(s.screen.HeightInPixels)}}
	if err := randr.Init(s.conn); err != nil {
		return whole, nil
	}

	res, err := randr.GetScreenResourcesCurrent(s.conn, s.screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("capture: randr screen resources: %w", err)
	}

	var monitors []Monitor
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(s.conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("capture: randr crtc info: %w", err)
		}
		if info.Width == 0 || info.Height == 0 {
			continue
		}
		monitors = append(monitors, Monitor{X: int(info.X), Y: int(info.Y), Width: int(info.Width), Height: int(info.Height)})
	}
	if len(monitors) == 0 {
		return whole, nil
	}
	return monitors, nil
}
