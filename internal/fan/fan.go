// Package fan builds the electric fan scene.
package fan

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"fan-scene/internal/geometry"
	"fan-scene/internal/scene"
)

// Scene constants.
const (
	Background = 0x666666

	DirectionalColor     = 0xffffff
	DirectionalIntensity = 1.0
	AmbientColor         = 0xffffff
	AmbientIntensity     = 0.2

	Red   = 0xff3333
	Green = 0x228822
	Blue  = 0x3399ff

	// BodyTilt is the fixed X rotation of the body pivot.
	BodyTilt   = math.Pi / 2
	// BladeRest is the blade-group Y rotation at blade angle 0.
	BladeRest  = math.Pi / 2
	// BladePitch is the Z tilt of every blade.
	BladePitch = 0.25
	// BladeCount blades are spaced 2π/BladeCount apart.
	BladeCount = 3
)

// Node names.
const (
	NameBase       = "base"
	NameStand      = "stand"
	NameBodyPivot  = "body-pivot"
	NameBody       = "body"
	NameBladeGroup = "blade-group"
)

// DirectionalPosition places the directional light; it shines toward the origin.
var DirectionalPosition = mgl64.Vec3{1, 1, 1}

// Rig is the built scene plus handles to the animated pivots.
type Rig struct {
	Scene      *scene.Scene
	BodyPivot  *scene.Node
	BladeGroup *scene.Node
	Blades     [BladeCount]*scene.Node
}

// Build assembles the fan. It has no failure modes.
func Build() *Rig {
	s := scene.New()
	s.Background = Background
	s.Ambient = scene.AmbientLight{Color: AmbientColor, Intensity: AmbientIntensity}
	s.Directional = []scene.DirectionalLight{{
		Color:     DirectionalColor,
		Intensity: DirectionalIntensity,
		Position:  DirectionalPosition,
	}}

	red := scene.NewPhong(Red)
	green := scene.NewPhong(Green)
	blue := scene.NewPhong(Blue)

	base := scene.NewMesh(NameBase, geometry.Cylinder(1, 1, 0.25, 8), blue)
	base.Position = mgl64.Vec3{0, 0.125, 0}
	s.Add(base)

	stand := scene.NewMesh(NameStand, geometry.Cylinder(0.25, 0.25, 3, 8), blue)
	stand.Position = mgl64.Vec3{0, 1.5, 0}
	s.Add(stand)

	bodyPivot := scene.NewNode(NameBodyPivot)
	bodyPivot.Position = mgl64.Vec3{0, 3, 0}
	bodyPivot.Rotation = mgl64.Vec3{BodyTilt, 0, 0}
	bodyPivot.Add(scene.NewMesh(NameBody, geometry.Cylinder(0.5, 0.5, 2, 8), blue))
	s.Add(bodyPivot)

	bladeGroup := scene.NewNode(NameBladeGroup)
	bladeGroup.Position = mgl64.Vec3{0, 1.25, 0}
	bladeGroup.Rotation = mgl64.Vec3{0, BladeRest, 0}
	bodyPivot.Add(bladeGroup)

	rig := &Rig{Scene: s, BodyPivot: bodyPivot, BladeGroup: bladeGroup}

	bladeGeom := geometry.Box(1, 0.05, 2.5)
	for i, mat := range [BladeCount]scene.Material{red, green, blue} {
		offset := scene.NewNode(BladeOffsetName(i))
		offset.Rotation = mgl64.Vec3{0, float64(i) * (2 * math.Pi / BladeCount), BladePitch}
		blade := scene.NewMesh(BladeName(i), bladeGeom, mat)
		blade.Position = mgl64.Vec3{0, 0, 1.25}
		offset.Add(blade)
		bladeGroup.Add(offset)
		rig.Blades[i] = offset
	}

	return rig
}

// BladeOffsetName names the pivot of blade i (0-based).
func BladeOffsetName(i int) string { return "blade-offset-" + string(rune('1'+i)) }

// BladeName names the mesh of blade i (0-based).
func BladeName(i int) string { return "blade-" + string(rune('1'+i)) }
