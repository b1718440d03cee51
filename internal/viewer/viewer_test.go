package viewer

import (
	"math"
	"testing"

	"fan-scene/internal/config"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	var cfg config.Config
	cfg.Resolve(config.Flags{Width: 120, Height: 80, Scale: 4})
	return New(cfg)
}

func TestHoldKeyGatesAnimation(t *testing.T) {
	s := newSession(t)
	for i := 0; i < 10; i++ {
		s.Update(InputState{})
	}
	if st := s.State(); st.BladeAngle != 0 || st.BodyAngle != 0 {
		t.Fatalf("idle ticks moved the fan: %+v", st)
	}

	for i := 0; i < 150; i++ {
		s.Update(InputState{Hold: true})
	}
	st := s.State()
	if st.BodyAngle != 0.75 || st.Increasing {
		t.Fatalf("after 150 held ticks: %+v", st)
	}

	s.Update(InputState{})
	if s.State().BladeAngle != st.BladeAngle {
		t.Fatal("releasing the key did not stop the blades")
	}
}

func TestResize(t *testing.T) {
	s := newSession(t)
	if w, h := s.RenderSize(); w != 30 || h != 20 {
		t.Fatalf("RenderSize\nhave %dx%d\nwant 30x20", w, h)
	}
	s.Resize(200, 100)
	if s.Camera().Aspect != 2 {
		t.Fatalf("Aspect\nhave %v\nwant 2", s.Camera().Aspect)
	}
	if w, h := s.RenderSize(); w != 50 || h != 25 {
		t.Fatalf("RenderSize\nhave %dx%d\nwant 50x25", w, h)
	}
	s.Resize(0, 0)
	if w, h := s.WindowSize(); w != 200 || h != 100 {
		t.Fatalf("WindowSize after bad resize\nhave %dx%d", w, h)
	}
	img := s.Frame()
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Fatalf("Frame bounds\nhave %v\nwant 50x25", b)
	}
}

func TestDragRotatesCamera(t *testing.T) {
	s := newSession(t)
	s.Update(InputState{})
	eye := s.Camera().Eye
	dist := eye.Len()

	// The first pressed tick only anchors the drag.
	s.Update(InputState{Left: true, X: 10, Y: 10})
	if s.Camera().Eye != eye {
		t.Fatal("press without motion moved the camera")
	}
	s.Update(InputState{Left: true, X: 30, Y: 10})
	moved := s.Camera().Eye
	if moved == eye {
		t.Fatal("drag did not move the camera")
	}
	if math.Abs(moved.Len()-dist) > 1e-9 {
		t.Fatalf("rotation changed distance: %v vs %v", moved.Len(), dist)
	}

	// Releasing and pressing elsewhere must not jump.
	s.Update(InputState{})
	before := s.Camera().Eye
	s.Update(InputState{Left: true, X: 300, Y: 300})
	if s.Camera().Eye != before {
		t.Fatal("new press jumped the camera")
	}
}

func TestPanAndWheel(t *testing.T) {
	s := newSession(t)
	s.Update(InputState{Right: true, X: 0, Y: 0})
	s.Update(InputState{Right: true, X: 20, Y: 0})
	if s.Camera().Target.Len() == 0 {
		t.Fatal("right drag did not pan")
	}

	d := s.Camera().Eye.Sub(s.Camera().Target).Len()
	s.Update(InputState{Wheel: 2})
	if nd := s.Camera().Eye.Sub(s.Camera().Target).Len(); nd >= d {
		t.Fatalf("wheel did not dolly in: %v >= %v", nd, d)
	}
}
