package raster

import "math"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, larger is nearer, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.Clear(0x000000)
	return fb
}

// Clear fills the color buffer with an opaque 0xRRGGBB and resets depth.
func (fb *FrameBuffer) Clear(rgb uint32) {
	r, g, b := uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)
	for i := 0; i+3 < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 255
	}
	negInf := math.Inf(-1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = negInf
	}
}
