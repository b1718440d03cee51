// Package capture encodes rendered frames to disk with a worker pool.
package capture

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"fan-scene/internal/anim"
)

// Config holds the output settings for a capture run.
type Config struct {
	OutputDir string
	Format    string // "webp" or "tga"
	Workers   int

	// Progress receives a line every ProgressEvery; nil disables reporting.
	Progress      io.Writer
	ProgressEvery time.Duration
}

// Frame is one rendered frame and the animation state that produced it.
type Frame struct {
	Index int
	State anim.State
	Image *image.NRGBA
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Index   int
	Path    string
	State   anim.State
	Success bool
	Error   string
}

// FileName returns the relative file name of frame index.
func FileName(index int, format string) string {
	return fmt.Sprintf("frame_%05d.%s", index, format)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("capture: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("capture: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("capture: unknown format %q", format)
	}
	return nil
}

// Run encodes frames from the channel until it is closed. total sizes the
// result slice; frames with an index outside [0, total) are dropped.
func Run(cfg Config, total int, frames <-chan Frame) []Result {
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil && cfg.ProgressEvery > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ProgressEvery)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range frames {
				if f.Index < 0 || f.Index >= total {
					continue
				}
				results[f.Index] = processFrame(cfg, f)
				processed.Add(1)
			}
		}()
	}

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, f Frame) Result {
	name := FileName(f.Index, cfg.Format)
	res := Result{Index: f.Index, Path: name, State: f.State}

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	out, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if err := Encode(out, f.Image, cfg.Format); err != nil {
		out.Close()
		res.Error = err.Error()
		return res
	}
	if err := out.Close(); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
