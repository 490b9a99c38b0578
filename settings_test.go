package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoomer.yaml")

	cfg := DefaultConfig()
	cfg.Camera.ZoomRange.Max = 64
	cfg.Highlighter.Radius = 80
	cfg.Window.Fullscreen = true
	cfg.InterpolationScript = "smooth.star"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoomer.yaml")
	src := "highlighter:\n  radius: 120\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Highlighter.Radius = 120
	assert.Equal(t, want, cfg)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"inverted zoom":  "camera:\n  zoom_range: {min: 5, max: 1}\n",
		"zero zoom":      "camera:\n  zoom_range: {min: 0, max: 1}\n",
		"negative range": "camera:\n  position_range: {x: -1, y: 0}\n",
		"bad smoothing":  "camera:\n  smoothing: {length_sec: 0, exp_rate: 1}\n",
		"bad radius":     "highlighter:\n  radius: -3\n",
		"bad window":     "window: {width: 0, height: 10}\n",
		"not yaml":       "camera: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "zoomer.yaml")
			require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

			cfg, err := LoadConfig(path)
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestCameraConfigResolvesAspectRatio(t *testing.T) {
	cfg := DefaultConfig()

	cc := cfg.CameraConfig(1.5)
	assert.Equal(t, mgl32.Vec2{1, 1.5}, cc.PositionRange)
	assert.Equal(t, cfg.Camera.ZoomRange, cc.ZoomRange)

	cfg.Camera.PositionRange.Y = 2
	assert.Equal(t, mgl32.Vec2{1, 2}, cfg.CameraConfig(1.5).PositionRange)
}
