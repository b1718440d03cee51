package main

import (
	"flag"
	"fmt"
	"os"

	"fan-scene/internal/config"
	"fan-scene/internal/host"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width (default: 960)")
	height := flag.Int("height", 0, "Window height (default: 540)")
	scale := flag.Int("scale", 0, "Window pixels per rendered pixel (default: 2)")
	supersample := flag.Int("supersample", 0, "Render supersampling factor (default: 1)")
	holdKey := flag.String("key", "", "Key held to run the fan (default: Space)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Scale:       *scale,
		Supersample: *supersample,
		HoldKey:     *holdKey,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := host.ParseKey(cfg.HoldKey); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, h := cfg.RenderSize()
	fmt.Printf("Electric fan: %dx%d window, rendering %dx%d (x%d supersample)\n", cfg.Width, cfg.Height, w, h, cfg.Supersample)
	fmt.Printf("Hold %s to run. Drag to orbit, right-drag to pan, scroll to zoom, Esc to quit.\n", cfg.HoldKey)

	if err := host.RunWindow(cfg, "Electric Fan"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
