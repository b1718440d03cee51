// Package viewer drives the interactive fan: one Update per display tick,
// orbit camera input, resize handling and frame rendering. It has no
// dependency on a windowing library; see package host for that.
package viewer

import (
	"image"

	"fan-scene/internal/anim"
	"fan-scene/internal/camera"
	"fan-scene/internal/config"
	"fan-scene/internal/fan"
	"fan-scene/internal/raster"
)

// InputState is one tick's snapshot of the keyboard and pointer.
type InputState struct {
	Hold  bool // the hold key is down
	Left  bool // rotate button
	Right bool // pan button
	X, Y  int  // cursor, window pixels
	Wheel float64
}

// Session is the running viewer.
type Session struct {
	ctrl     *anim.Controller
	cam      *camera.Perspective
	orbit    *camera.Orbit
	renderer *raster.Renderer
	scale    int

	winW, winH int
	rw, rh     int

	dragging bool
	lastX    int
	lastY    int
}

// New builds the fan and a camera sized for the configured window.
func New(cfg config.Config) *Session {
	rig := fan.Build()
	s := &Session{
		ctrl:     anim.NewController(rig, cfg.Params()),
		renderer: raster.NewRenderer(cfg.Supersample),
		scale:    cfg.Scale,
	}
	if s.scale < 1 {
		s.scale = 1
	}
	s.cam = camera.NewPerspective(cfg.Width, cfg.Height)
	s.orbit = camera.NewOrbit(s.cam)
	s.Resize(cfg.Width, cfg.Height)
	return s
}

// Update advances one tick: pointer input moves the camera, then the
// animation steps with the hold key as its running flag.
func (s *Session) Update(in InputState) anim.State {
	pressed := in.Left || in.Right
	if pressed && s.dragging {
		dx := float64(in.X - s.lastX)
		dy := float64(in.Y - s.lastY)
		if in.Left {
			s.orbit.Rotate(dx, dy, s.winH)
		} else {
			s.orbit.Pan(dx, dy, s.cam, s.winH)
		}
	}
	s.dragging = pressed
	s.lastX, s.lastY = in.X, in.Y

	if in.Wheel != 0 {
		s.orbit.Dolly(in.Wheel)
	}
	s.orbit.Update(s.cam)

	return s.ctrl.Tick(in.Hold)
}

// Resize reacts to a new window size. Non-positive sizes are ignored.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.winW && height == s.winH {
		return
	}
	s.winW, s.winH = width, height
	s.rw, s.rh = max(width/s.scale, 1), max(height/s.scale, 1)
	s.cam.Resize(width, height)
}

// WindowSize returns the last size passed to Resize.
func (s *Session) WindowSize() (int, int) { return s.winW, s.winH }

// RenderSize returns the size of the images Frame produces.
func (s *Session) RenderSize() (int, int) { return s.rw, s.rh }

// Frame renders the current state.
func (s *Session) Frame() *image.NRGBA {
	return s.renderer.Render(s.ctrl.Rig().Scene, s.cam, s.rw, s.rh)
}

// State returns the animation state after the last Update.
func (s *Session) State() anim.State { return s.ctrl.State() }

// Camera returns the camera the orbit controls move.
func (s *Session) Camera() *camera.Perspective { return s.cam }
