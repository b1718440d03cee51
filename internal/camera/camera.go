// Package camera holds the perspective camera and its orbit controls.
package camera

import "github.com/go-gl/mathgl/mgl64"

// Default camera parameters.
const (
	DefaultFovY = 60.0
	DefaultNear = 0.1
	DefaultFar  = 20.0
)

// Perspective is a pinhole camera looking from Eye at Target.
type Perspective struct {
	FovY   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// NewPerspective returns the default camera for a width×height viewport.
func NewPerspective(width, height int) *Perspective {
	c := &Perspective{
		FovY:   DefaultFovY,
		Aspect: 1,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Eye:    mgl64.Vec3{10, 10, 10},
		Up:     mgl64.Vec3{0, 1, 0},
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. Non-positive sizes are ignored.
func (c *Perspective) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// View is the world-to-camera matrix looking from Eye at Target.
func (c *Perspective) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection maps camera space to clip space with FovY in degrees.
func (c *Perspective) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection·View.
func (c *Perspective) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
