package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const polarMargin = 1e-6

// Orbit rotates, dollies and pans a camera around a target point.
// Angles follow the usual spherical convention: Polar is measured from +Y,
// Azimuth around +Y starting at +Z.
type Orbit struct {
	Target  mgl64.Vec3
	Radius  float64
	Azimuth float64
	Polar   float64

	MinDistance float64
	MaxDistance float64
	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64
}

// NewOrbit derives the spherical state from the camera's current eye.
func NewOrbit(c *Perspective) *Orbit {
	o := &Orbit{
		Target:      c.Target,
		MinDistance: 1,
		MaxDistance: c.Far,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		PanSpeed:    1,
	}
	off := c.Eye.Sub(c.Target)
	o.Radius = off.Len()
	if o.Radius < 1e-12 {
		o.Radius = 1
		o.Polar = math.Pi / 2
		return o
	}
	o.Azimuth = math.Atan2(off[0], off[2])
	o.Polar = math.Acos(mgl64.Clamp(off[1]/o.Radius, -1, 1))
	return o
}

// Rotate turns the camera by a pointer drag of (dx, dy) pixels.
// A drag across the full viewport height is one full turn.
func (o *Orbit) Rotate(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	k := 2 * math.Pi * o.RotateSpeed / float64(viewportHeight)
	o.Azimuth -= dx * k
	o.Polar -= dy * k
	o.Polar = mgl64.Clamp(o.Polar, polarMargin, math.Pi-polarMargin)
}

// Dolly moves the camera toward (wheel > 0) or away from the target.
func (o *Orbit) Dolly(wheel float64) {
	if wheel == 0 {
		return
	}
	scale := math.Pow(0.95, o.ZoomSpeed*math.Abs(wheel))
	if wheel > 0 {
		o.Radius *= scale
	} else {
		o.Radius /= scale
	}
	o.Radius = mgl64.Clamp(o.Radius, o.MinDistance, o.MaxDistance)
}

// Pan slides the target in the camera's view plane by a drag of (dx, dy) pixels.
func (o *Orbit) Pan(dx, dy float64, c *Perspective, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	eye := o.eye()
	forward := o.Target.Sub(eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	// World units per pixel at the target distance.
	unit := 2 * o.Radius * math.Tan(mgl64.DegToRad(c.FovY)/2) / float64(viewportHeight) * o.PanSpeed
	o.Target = o.Target.Sub(right.Mul(dx * unit)).Add(up.Mul(dy * unit))
}

func (o *Orbit) eye() mgl64.Vec3 {
	sp := math.Sin(o.Polar)
	off := mgl64.Vec3{
		o.Radius * sp * math.Sin(o.Azimuth),
		o.Radius * math.Cos(o.Polar),
		o.Radius * sp * math.Cos(o.Azimuth),
	}
	return o.Target.Add(off)
}

// Update writes the orbit's eye and target into c.
func (o *Orbit) Update(c *Perspective) {
	c.Target = o.Target
	c.Eye = o.eye()
}
