package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"fan-scene/internal/anim"
)

// Config holds window, motion and capture settings.
type Config struct {
	// Window
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"` // window pixels per rendered pixel
	Supersample int    `json:"supersample"`
	TPS         int    `json:"tps"`
	HoldKey     string `json:"hold_key"`

	// Motion
	BladeStep  float64 `json:"blade_step"`
	SwingStep  float64 `json:"swing_step"`
	SwingLimit float64 `json:"swing_limit"`

	// Capture
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Frames    int    `json:"frames"`
	Hold      string `json:"hold"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Scale       int
	Supersample int
	HoldKey     string
	OutputDir   string
	Format      string
	Frames      int
	Hold        string
	Workers     int
}

// Resolve applies flag overrides, then fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.HoldKey != "" {
		c.HoldKey = flags.HoldKey
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Hold != "" {
		c.Hold = flags.Hold
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.HoldKey == "" {
		c.HoldKey = "Space"
	}
	if c.BladeStep == 0 {
		c.BladeStep = anim.DefaultBladeStep
	}
	if c.SwingStep == 0 {
		c.SwingStep = anim.DefaultSwingStep
	}
	if c.SwingLimit == 0 {
		c.SwingLimit = anim.DefaultSwingLimit
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Frames <= 0 {
		c.Frames = 600
	}
	if c.Hold == "" {
		c.Hold = "all"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	if c.BladeStep <= 0 {
		return fmt.Errorf("config: blade step %v must be positive", c.BladeStep)
	}
	if c.SwingStep <= 0 || c.SwingLimit <= 0 {
		return fmt.Errorf("config: swing step and limit must be positive")
	}
	if c.SwingStep > c.SwingLimit {
		return fmt.Errorf("config: swing step %v exceeds limit %v", c.SwingStep, c.SwingLimit)
	}
	if _, err := anim.ParseSchedule(c.Hold); err != nil {
		return fmt.Errorf("config: hold: %w", err)
	}
	return nil
}

// Params returns the motion settings.
func (c *Config) Params() anim.Params {
	return anim.Params{
		BladeStep:  c.BladeStep,
		SwingStep:  c.SwingStep,
		SwingLimit: c.SwingLimit,
	}
}

// RenderSize returns the software render resolution for the window size.
func (c *Config) RenderSize() (int, int) {
	w, h := c.Width/c.Scale, c.Height/c.Scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
