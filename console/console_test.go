package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleSprint(t *testing.T) {
	red := Simple(Red)
	blue := Simple(Blue)

	assert.Equal(t, "plain", Style{}.Sprint("plain"))
	assert.Equal(t, "\x1b[1;31mhi\x1b[0m", Style{Formatting: []Formatting{Bold}, Fg: &red}.Sprint("hi"))
	assert.Equal(t, "\x1b[4;31;44mx\x1b[0m", Style{Formatting: []Formatting{Underline}, Fg: &red, Bg: &blue}.Sprint("x"))
}

func TestColorSequences(t *testing.T) {
	assert.Equal(t, "32", Simple(Green).sequence(false))
	assert.Equal(t, "42", Simple(Green).sequence(true))
	assert.Equal(t, "39", Color{}.sequence(false))
	assert.Equal(t, "38;2;1;2;3", RGB(1, 2, 3).sequence(false))
	assert.Equal(t, "48;2;1;2;3", RGB(1, 2, 3).sequence(true))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 128, 0), c)

	c, err = ParseHexColor("0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, RGB(10, 11, 12), c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestContextWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	ctx := New(&buf)

	assert.False(t, ctx.ANSI())
	assert.Equal(t, "plain", ctx.Sprint(Style{Formatting: []Formatting{Bold}}, "plain"))

	ctx.Logger("[zoomer]", Simple(Cyan)).Println("ready")
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "[zoomer] ready\n"), out)
	assert.NotContains(t, out, "\x1b[")
	assert.NoError(t, ctx.Close())
}
