package postprocess_test

import (
	"image"
	"testing"

	"fan-scene/internal/camera"
	"fan-scene/internal/fan"
	"fan-scene/internal/postprocess"
	"fan-scene/internal/raster"
)

func TestDownsampleFanFrame(t *testing.T) {
	rig := fan.Build()
	cam := camera.NewPerspective(48, 32)
	full := raster.NewRenderer(1).Render(rig.Scene, cam, 96, 64)

	small := postprocess.Downsample(full, 48, 32)
	if small.Bounds() != image.Rect(0, 0, 48, 32) {
		t.Fatalf("bounds\nhave %v\nwant 48x32", small.Bounds())
	}

	near := func(v, want uint8) bool { return int(v)-int(want) <= 1 && int(want)-int(v) <= 1 }
	bg, fg := 0, 0
	for i := 0; i < len(small.Pix); i += 4 {
		if small.Pix[i+3] != 255 {
			t.Fatalf("pixel %d alpha\nhave %d\nwant 255", i/4, small.Pix[i+3])
		}
		if near(small.Pix[i], 0x66) && near(small.Pix[i+1], 0x66) && near(small.Pix[i+2], 0x66) {
			bg++
		} else {
			fg++
		}
	}
	if bg == 0 || fg == 0 {
		t.Fatalf("downsampled fan lost its shape: %d background, %d fan pixels", bg, fg)
	}
	if c := small.NRGBAAt(0, 0); !near(c.R, 0x66) || !near(c.G, 0x66) || !near(c.B, 0x66) {
		t.Fatalf("corner pixel\nhave %v\nwant background 0x666666", c)
	}
}
