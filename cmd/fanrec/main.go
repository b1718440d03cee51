package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fan-scene/internal/anim"
	"fan-scene/internal/camera"
	"fan-scene/internal/capture"
	"fan-scene/internal/config"
	"fan-scene/internal/fan"
	"fan-scene/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 600)")
	hold := flag.String("hold", "", `Frames with the key held, e.g. "0:300,450:600" or "all" (default: all)`)
	width := flag.Int("width", 0, "Frame width (default: 960)")
	height := flag.Int("height", 0, "Frame height (default: 540)")
	supersample := flag.Int("supersample", 0, "Render supersampling factor (default: 1)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Image format: webp or tga (default: webp)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")

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

	// CLI flags override config file. Frames are written at full size.
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Scale:       1,
		Supersample: *supersample,
		OutputDir:   *outputDir,
		Format:      *format,
		Frames:      *frames,
		Hold:        *hold,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sched, err := anim.ParseSchedule(cfg.Hold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Electric fan recorder → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Size: %dx%d, Hold: %s, Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Hold, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	rig := fan.Build()
	ctrl := anim.NewController(rig, cfg.Params())
	cam := camera.NewPerspective(cfg.Width, cfg.Height)
	renderer := raster.NewRenderer(cfg.Supersample)

	// Frames are rendered in order on this goroutine; encoding fans out.
	ch := make(chan capture.Frame, cfg.Workers*2)
	go func() {
		defer close(ch)
		for i := 0; i < cfg.Frames; i++ {
			state := ctrl.Tick(sched.Running(i))
			ch <- capture.Frame{
				Index: i,
				State: state,
				Image: renderer.Render(rig.Scene, cam, cfg.Width, cfg.Height),
			}
		}
	}()

	results := capture.Run(capture.Config{
		OutputDir:     cfg.OutputDir,
		Format:        cfg.Format,
		Workers:       cfg.Workers,
		Progress:      os.Stdout,
		ProgressEvery: 2 * time.Second,
	}, cfg.Frames, ch)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []capture.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := capture.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
