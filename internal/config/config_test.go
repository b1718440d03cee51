package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"fan-scene/internal/anim"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})
	if c.Width != 960 || c.Height != 540 || c.Scale != 2 || c.TPS != 60 {
		t.Fatalf("window defaults: %+v", c)
	}
	if c.HoldKey != "Space" || c.Format != "webp" || c.Hold != "all" {
		t.Fatalf("string defaults: %+v", c)
	}
	if c.Params() != anim.DefaultParams() {
		t.Fatalf("Params\nhave %+v\nwant %+v", c.Params(), anim.DefaultParams())
	}
	if c.Workers != runtime.NumCPU() {
		t.Fatalf("Workers\nhave %d\nwant %d", c.Workers, runtime.NumCPU())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if w, h := c.RenderSize(); w != 480 || h != 270 {
		t.Fatalf("RenderSize\nhave %dx%d\nwant 480x270", w, h)
	}
}

func TestLoadAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 320, "height": 200, "format": "TGA", "swing_step": 0.01, "output_dir": "out"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.Resolve(Flags{Width: 640, OutputDir: "flag-out"})

	if c.Width != 640 {
		t.Fatalf("flag should override width: %d", c.Width)
	}
	if c.Height != 200 {
		t.Fatalf("file height lost: %d", c.Height)
	}
	if c.Format != "tga" {
		t.Fatalf("Format\nhave %q\nwant tga", c.Format)
	}
	if c.SwingStep != 0.01 {
		t.Fatalf("SwingStep\nhave %v\nwant 0.01", c.SwingStep)
	}
	if c.OutputDir != "flag-out" {
		t.Fatalf("OutputDir\nhave %q\nwant flag-out", c.OutputDir)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Load of missing file should fail")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := Load(bad); err == nil {
		t.Fatal("Load of malformed file should fail")
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "gif" }},
		{"hold", func(c *Config) { c.Hold = "1-2" }},
		{"negative swing", func(c *Config) { c.SwingStep = -1 }},
		{"negative limit", func(c *Config) { c.SwingLimit = -1 }},
		{"negative blade", func(c *Config) { c.BladeStep = -0.3 }},
		{"step>limit", func(c *Config) { c.SwingStep = 1 }},
	} {
		var c Config
		c.Resolve(Flags{})
		tc.mod(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateRejectsNegativeBladeStepFromFile(t *testing.T) {
	c := Config{BladeStep: -0.3}
	c.Resolve(Flags{})
	if c.BladeStep != -0.3 {
		t.Fatalf("BladeStep\nhave %v\nwant -0.3 kept by Resolve", c.BladeStep)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("negative blade step passed Validate")
	}
}

func TestRenderSizeFloor(t *testing.T) {
	c := Config{Width: 3, Height: 1, Scale: 4}
	if w, h := c.RenderSize(); w != 1 || h != 1 {
		t.Fatalf("RenderSize\nhave %dx%d\nwant 1x1", w, h)
	}
}
