package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestResize(t *testing.T) {
	c := NewPerspective(800, 400)
	if c.Aspect != 2 {
		t.Fatalf("Aspect\nhave %v\nwant 2", c.Aspect)
	}
	c.Resize(0, 100)
	c.Resize(100, -1)
	if c.Aspect != 2 {
		t.Fatalf("Aspect after bad resize\nhave %v\nwant 2", c.Aspect)
	}
	c.Resize(300, 400)
	if c.Aspect != 0.75 {
		t.Fatalf("Aspect\nhave %v\nwant 0.75", c.Aspect)
	}
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewPerspective(640, 480)
	p := mgl64.TransformCoordinate(c.Target, c.ViewProjection())
	if math.Abs(p[0]) > 1e-9 || math.Abs(p[1]) > 1e-9 {
		t.Fatalf("target in NDC\nhave %v\nwant x=y=0", p)
	}
	if p[2] <= -1 || p[2] >= 1 {
		t.Fatalf("target depth %v outside the clip range", p[2])
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	c := NewPerspective(640, 480)
	eye := c.Eye
	o := NewOrbit(c)
	if math.Abs(o.Radius-math.Sqrt(300)) > 1e-9 {
		t.Fatalf("Radius\nhave %v\nwant %v", o.Radius, math.Sqrt(300))
	}
	o.Update(c)
	if c.Eye.Sub(eye).Len() > 1e-9 {
		t.Fatalf("eye after Update\nhave %v\nwant %v", c.Eye, eye)
	}
}

func TestOrbitRotateKeepsRadius(t *testing.T) {
	c := NewPerspective(640, 480)
	o := NewOrbit(c)
	o.Rotate(120, 0, 480)
	o.Update(c)
	if d := c.Eye.Sub(c.Target).Len(); math.Abs(d-o.Radius) > 1e-9 {
		t.Fatalf("distance\nhave %v\nwant %v", d, o.Radius)
	}
	if math.Abs(c.Eye[1]-10) > 1e-9 {
		t.Fatalf("horizontal drag changed height: %v", c.Eye[1])
	}

	// Dragging far up pins the polar angle short of the pole.
	o.Rotate(0, 1e6, 480)
	if o.Polar < polarMargin || o.Polar > math.Pi {
		t.Fatalf("Polar not clamped: %v", o.Polar)
	}
	o.Rotate(10, 10, 0)
}

func TestOrbitDollyClamps(t *testing.T) {
	c := NewPerspective(640, 480)
	o := NewOrbit(c)
	r := o.Radius
	o.Dolly(1)
	if o.Radius >= r {
		t.Fatalf("Dolly in: radius %v not below %v", o.Radius, r)
	}
	o.Dolly(0)
	for i := 0; i < 1000; i++ {
		o.Dolly(1)
	}
	if o.Radius != o.MinDistance {
		t.Fatalf("Radius\nhave %v\nwant %v", o.Radius, o.MinDistance)
	}
	for i := 0; i < 1000; i++ {
		o.Dolly(-1)
	}
	if o.Radius != o.MaxDistance {
		t.Fatalf("Radius\nhave %v\nwant %v", o.Radius, o.MaxDistance)
	}
}

func TestOrbitPanMovesTarget(t *testing.T) {
	c := NewPerspective(640, 480)
	o := NewOrbit(c)
	o.Pan(50, 0, c, 480)
	if o.Target.Len() == 0 {
		t.Fatal("Pan did not move the target")
	}
	if math.Abs(o.Target[1]) > 1e-9 {
		t.Fatalf("horizontal pan moved target vertically: %v", o.Target)
	}
	o.Update(c)
	if c.Target != o.Target {
		t.Fatal("Update did not copy the target")
	}
}

func TestNewOrbitDegenerate(t *testing.T) {
	c := NewPerspective(1, 1)
	c.Eye = c.Target
	o := NewOrbit(c)
	if o.Radius != 1 {
		t.Fatalf("Radius\nhave %v\nwant 1", o.Radius)
	}
}
