//go:build windows

package capture

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetDC               = user32.NewProc("GetDC")
	procReleaseDC           = user32.NewProc("ReleaseDC")
	procGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")

	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procDeleteDC               = gdi32.NewProc("DeleteDC")
)

const (
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79

	srcCopy      = 0x00CC0020
	captureBlt   = 0x40000000
	biRGB        = 0
	dibRGBColors = 0
)

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

// GDISource copies the desktop with BitBlt.
type GDISource struct{}

func NewDesktop() (Desktop, error) {
	return GDISource{}, nil
}

// Bounds is the virtual screen spanning every monitor.
func (GDISource) Bounds() image.Rectangle {
	x, _, _ := procGetSystemMetrics.Call(smXVirtualScreen)
	y, _, _ := procGetSystemMetrics.Call(smYVirtualScreen)
	w, _, _ := procGetSystemMetrics.Call(smCXVirtualScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYVirtualScreen)
	origin := image.Pt(int(int32(x)), int(int32(y)))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(int(int32(w)), int(int32(h))))}
}

func (GDISource) Capture(bounds image.Rectangle) (*Screenshot, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("capture: empty bounds %v", bounds)
	}

	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return nil, fmt.Errorf("capture: GetDC failed")
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return nil, fmt.Errorf("capture: CreateCompatibleDC failed")
	}
	defer procDeleteDC.Call(memDC)

	bitmap, _, _ := procCreateCompatibleBitmap.Call(screenDC, uintptr(w), uintptr(h))
	if bitmap == 0 {
		return nil, fmt.Errorf("capture: CreateCompatibleBitmap failed")
	}
	defer procDeleteObject.Call(bitmap)

	if old, _, _ := procSelectObject.Call(memDC, bitmap); old == 0 {
		return nil, fmt.Errorf("capture: SelectObject failed")
	}

	ok, _, err := procBitBlt.Call(memDC, 0, 0, uintptr(w), uintptr(h),
		screenDC, uintptr(bounds.Min.X), uintptr(bounds.Min.Y), srcCopy|captureBlt)
	if ok == 0 {
		return nil, fmt.Errorf("capture: BitBlt: %w", err)
	}

	stride := RoundUpToPowerOf2(w*BytesPerPixel, 4)
	header := bitmapInfoHeader{
		Width: int32(w),
		// negative height asks for a top-down bitmap
		Height:      -int32(h),
		Planes:      1,
		BitCount:    BytesPerPixel * 8,
		Compression: biRGB,
		SizeImage:   uint32(stride * h),
	}
	header.Size = uint32(unsafe.Sizeof(header))

	pix := make([]byte, stride*h)
	lines, _, err := procGetDIBits.Call(memDC, bitmap, 0, uintptr(h),
		uintptr(unsafe.Pointer(&pix[0])), uintptr(unsafe.Pointer(&header)), dibRGBColors)
	if lines == 0 {
		return nil, fmt.Errorf("capture: GetDIBits: %w", err)
	}

	BGRAToRGBA(pix, w, h, stride)
	return &Screenshot{Width: w, Height: h, Stride: stride, Pix: pix}, nil
}

// Monitors enumerates the attached displays.
func (GDISource) Monitors() ([]Monitor, error) {
	var monitors []Monitor
	cb := windows.NewCallback(func(_, _ uintptr, r *rect, _ uintptr) uintptr {
		monitors = append(monitors, Monitor{
			X:      int(r.Left),
			Y:      int(r.Top),
			Width:  int(r.Right - r.Left),
			Height: int(r.Bottom - r.Top),
		})
		return 1
	})
	if ok, _, err := procEnumDisplayMonitors.Call(0, 0, cb, 0); ok == 0 {
		return nil, fmt.Errorf("capture: EnumDisplayMonitors: %w", err)
	}
	return monitors, nil
}
