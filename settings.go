package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"screen-zoomer/canvas"
)

type PositionRangeSettings struct {
	X float32 `yaml:"x"`
	// Y of 0 means the aspect-ratio ratio of the running session.
	Y float32 `yaml:"y"`
}

type CameraSettings struct {
	ZoomRange     canvas.Range          `yaml:"zoom_range"`
	PositionRange PositionRangeSettings `yaml:"position_range"`
	Smoothing     canvas.Smoothing      `yaml:"smoothing"`
}

type HighlighterSettings struct {
	Radius    float32          `yaml:"radius"`
	Smoothing canvas.Smoothing `yaml:"smoothing"`
}

type WindowSettings struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

type Config struct {
	Camera      CameraSettings      `yaml:"camera"`
	Highlighter HighlighterSettings `yaml:"highlighter"`
	Window      WindowSettings      `yaml:"window"`
	// InterpolationScript is an optional Starlark file whose interpolate function
	// replaces the camera smoothing.
	InterpolationScript string `yaml:"interpolation_script"`
}

func DefaultConfig() Config {
	smoothing := canvas.Smoothing{LengthSec: DefaultSmoothingLength, ExpRate: DefaultSmoothingRate}
	return Config{
		Camera: CameraSettings{
			ZoomRange:     canvas.Range{Min: DefaultZoomMin, Max: DefaultZoomMax},
			PositionRange: PositionRangeSettings{X: DefaultPositionRangeX},
			Smoothing:     smoothing,
		},
		Highlighter: HighlighterSettings{
			Radius:    DefaultHighlighterRadius,
			Smoothing: smoothing,
		},
		Window: WindowSettings{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// Validate reports the first setting the camera or highlighter would reject.
func (c Config) Validate() error {
	if !c.Camera.ZoomRange.Valid() {
		return fmt.Errorf("camera.zoom_range: need 0 < min <= max, got %v..%v", c.Camera.ZoomRange.Min, c.Camera.ZoomRange.Max)
	}
	if c.Camera.PositionRange.X < 0 || c.Camera.PositionRange.Y < 0 {
		return fmt.Errorf("camera.position_range: must not be negative, got (%v, %v)", c.Camera.PositionRange.X, c.Camera.PositionRange.Y)
	}
	if err := validateSmoothing("camera.smoothing", c.Camera.Smoothing); err != nil {
		return err
	}
	if c.Highlighter.Radius <= 0 {
		return fmt.Errorf("highlighter.radius: must be positive, got %v", c.Highlighter.Radius)
	}
	if err := validateSmoothing("highlighter.smoothing", c.Highlighter.Smoothing); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func validateSmoothing(key string, s canvas.Smoothing) error {
	if s.LengthSec <= 0 || s.ExpRate <= 0 {
		return fmt.Errorf("%s: length_sec and exp_rate must be positive, got %v and %v", key, s.LengthSec, s.ExpRate)
	}
	return nil
}

// CameraConfig resolves the camera settings for a session whose aspect-ratio ratio is arr.
func (c Config) CameraConfig(arr float32) canvas.CameraConfig {
	pr := mgl32.Vec2{c.Camera.PositionRange.X, c.Camera.PositionRange.Y}
	if pr.Y() == 0 {
		pr[1] = arr
	}
	return canvas.CameraConfig{
		ZoomRange:     c.Camera.ZoomRange,
		PositionRange: pr,
		Smoothing:     c.Camera.Smoothing,
	}
}

func SaveConfig(cfg Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(&cfg)
	if err != nil {
		return err
	}
	return enc.Close()
}

// LoadConfig reads filename over the defaults, so keys the file leaves out keep their
// default values. A missing file yields the defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}
