package console

import (
	"fmt"
	"strconv"
	"strings"
)

type Formatting uint8

const (
	Default     Formatting = 0
	Bold        Formatting = 1
	Underline   Formatting = 4
	Negative    Formatting = 7
	NoBold      Formatting = 22
	NoUnderline Formatting = 24
	NoNegative  Formatting = 27
)

type SimpleColor uint8

const (
	Black SimpleColor = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	_
	DefaultColor
)

// Color is either a SimpleColor or a 24-bit RGB colour.
type Color struct {
	simple   SimpleColor
	extended bool
	r, g, b  uint8
}

func Simple(c SimpleColor) Color { return Color{simple: c} }

func RGB(r, g, b uint8) Color { return Color{extended: true, r: r, g: g, b: b} }

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(hex string) (Color, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("console: colour %q is not 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("console: colour %q: %w", hex, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func (c Color) sequence(background bool) string {
	offset := 0
	if background {
		offset = 10
	}
	if c.extended {
		return fmt.Sprintf("%d;2;%d;%d;%d", 38+offset, c.r, c.g, c.b)
	}
	if c.simple == 0 {
		return strconv.Itoa(int(DefaultColor) + offset)
	}
	return strconv.Itoa(int(c.simple) + offset)
}

// Style is a set of SGR attributes. The zero Style prints text unchanged.
type Style struct {
	Formatting []Formatting
	Fg, Bg     *Color
}

func (s Style) empty() bool {
	return len(s.Formatting) == 0 && s.Fg == nil && s.Bg == nil
}

// Sprint wraps the message in the style's escape sequence and a reset.
func (s Style) Sprint(a ...any) string {
	msg := fmt.Sprint(a...)
	if s.empty() {
		return msg
	}

	seqs := make([]string, 0, len(s.Formatting)+2)
	for _, f := range s.Formatting {
		seqs = append(seqs, strconv.Itoa(int(f)))
	}
	if s.Fg != nil {
		seqs = append(seqs, s.Fg.sequence(false))
	}
	if s.Bg != nil {
		seqs = append(seqs, s.Bg.sequence(true))
	}
	return escape(strings.Join(seqs, ";")) + msg + escape("0")
}

func escape(seq string) string {
	return "\x1b[" + seq + "m"
}
