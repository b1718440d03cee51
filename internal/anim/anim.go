// Package anim advances the fan's animation state one frame at a time.
package anim

import "fan-scene/internal/fan"

// Default step sizes, radians per frame.
const (
	DefaultBladeStep  = 0.3
	DefaultSwingStep  = 0.005
	DefaultSwingLimit = 0.75

	// limitEpsilon absorbs float drift so that an accumulated angle of
	// 0.74999999999 counts as having reached 0.75.
	limitEpsilon = 1e-9
)

// Params are the fixed per-frame increments.
type Params struct {
	BladeStep  float64
	SwingStep  float64
	SwingLimit float64
}

// DefaultParams returns the stock fan motion.
func DefaultParams() Params {
	return Params{
		BladeStep:  DefaultBladeStep,
		SwingStep:  DefaultSwingStep,
		SwingLimit: DefaultSwingLimit,
	}
}

// State is everything that changes between frames.
type State struct {
	Running    bool
	Increasing bool
	BladeAngle float64
	BodyAngle  float64
}

// NewState returns the rest state: both angles zero, swinging toward +limit.
func NewState() State {
	return State{Increasing: true}
}

// Step returns the state one frame later. It does nothing unless s.Running.
//
// The body angle moves one SwingStep toward the current limit. Reaching
// the limit clamps the angle to it and reverses direction on that frame,
// so the body angle never leaves [-SwingLimit, SwingLimit].
func Step(s State, p Params) State {
	if !s.Running {
		return s
	}

	s.BladeAngle += p.BladeStep

	if s.Increasing {
		s.BodyAngle += p.SwingStep
		if s.BodyAngle >= p.SwingLimit-limitEpsilon {
			s.BodyAngle = p.SwingLimit
			s.Increasing = false
		}
	} else {
		s.BodyAngle -= p.SwingStep
		if s.BodyAngle <= -p.SwingLimit+limitEpsilon {
			s.BodyAngle = -p.SwingLimit
			s.Increasing = true
		}
	}
	return s
}

// Apply writes the state's angles into the rig's pivots.
func Apply(rig *fan.Rig, s State) {
	rig.BodyPivot.Rotation[2] = s.BodyAngle
	rig.BladeGroup.Rotation[1] = fan.BladeRest + s.BladeAngle
}

// Controller is the per-frame tick shared by the window and the recorder.
type Controller struct {
	params Params
	rig    *fan.Rig
	state  State
	frame  int
}

// NewController binds a rig at rest.
func NewController(rig *fan.Rig, p Params) *Controller {
	c := &Controller{params: p, rig: rig, state: NewState()}
	Apply(rig, c.state)
	return c
}

// Tick sets the running flag, advances one frame and updates the rig.
func (c *Controller) Tick(running bool) State {
	c.state.Running = running
	c.state = Step(c.state, c.params)
	Apply(c.rig, c.state)
	c.frame++
	return c.state
}

// State returns the state after the last Tick.
func (c *Controller) State() State { return c.state }

// Frame returns the number of ticks so far.
func (c *Controller) Frame() int { return c.frame }

// Rig returns the rig the controller drives.
func (c *Controller) Rig() *fan.Rig { return c.rig }
