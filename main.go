package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"screen-zoomer/capture"
	"screen-zoomer/console"
)

func main() {
	configPath := flag.String("config", DefaultConfigPath, "path to the YAML config file")
	imagePath := flag.String("image", "", "magnify an image file instead of the screen")
	monitor := flag.Int("monitor", 0, "index of the monitor to capture")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	debug := flag.Bool("debug", false, "start with the debug panel open")
	writeConfig := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	term := console.New(os.Stderr)
	defer term.Close()
	logger := term.Logger("zoomer", console.Simple(console.Cyan))

	if *writeConfig {
		if err := SaveConfig(DefaultConfig(), *configPath); err != nil {
			logger.Fatal(err)
		}
		logger.Println("default config written to", *configPath)
		return
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Fatal(err)
	}

	source, bounds, err := openSource(*imagePath, *monitor, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if c, ok := source.(io.Closer); ok {
		defer c.Close()
	}

	shot, err := source.Capture(bounds)
	if err != nil {
		logger.Fatal(err)
	}

	z := NewZoomer(cfg, logger, source, bounds, shot)
	z.ui.Debug.Visible = *debug

	if *watch {
		w, err := NewConfigWatcher(*configPath)
		if err != nil {
			logger.Printf("not watching %s: %v", *configPath, err)
		} else {
			defer w.Close()
			z.watcher = w
		}
	}

	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if _, ok := source.(capture.Desktop); ok {
		// cover the captured monitor exactly
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowPosition(bounds.Min.X, bounds.Min.Y)
		ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(z); err != nil {
		logger.Fatal(err)
	}
}

// openSource picks what to magnify: an image file, or one monitor of the desktop.
func openSource(imagePath string, monitor int, logger *log.Logger) (capture.Source, image.Rectangle, error) {
	if imagePath != "" {
		return capture.FileSource{Path: imagePath}, image.Rect(0, 0, MaxTextureSize, MaxTextureSize), nil
	}

	desktop, err := capture.NewDesktop()
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	monitors, err := desktop.Monitors()
	if err != nil || len(monitors) == 0 {
		logger.Printf("monitor list unavailable (%v), capturing the whole desktop", err)
		return desktop, desktop.Bounds(), nil
	}
	if monitor < 0 || monitor >= len(monitors) {
		return nil, image.Rectangle{}, fmt.Errorf("monitor %d out of range: %d monitors found", monitor, len(monitors))
	}
	return desktop, monitors[monitor].Rect(), nil
}
