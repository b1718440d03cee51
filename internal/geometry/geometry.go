// Package geometry generates the primitive meshes the fan is built from.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list in model space.
type Geometry struct {
	Positions []mgl64.Vec3
	Triangles [][3]int
}

// Bounds returns the axis-aligned min/max corners of all positions.
func (g *Geometry) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	if len(g.Positions) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range g.Positions {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// Cylinder builds a capped cylinder centred at the origin with its axis on +Y.
// radialSegments below 3 are raised to 3.
func Cylinder(radiusTop, radiusBottom, height float64, radialSegments int) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	half := height / 2
	n := radialSegments

	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, 2*n+2),
		Triangles: make([][3]int, 0, 4*n),
	}

	// Ring vertices: top ring [0, n), bottom ring [n, 2n)
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n) * 2 * math.Pi
		s, c := math.Sin(theta), math.Cos(theta)
		g.Positions = append(g.Positions, mgl64.Vec3{radiusTop * s, half, radiusTop * c})
	}
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n) * 2 * math.Pi
		s, c := math.Sin(theta), math.Cos(theta)
		g.Positions = append(g.Positions, mgl64.Vec3{radiusBottom * s, -half, radiusBottom * c})
	}
	topCenter := len(g.Positions)
	g.Positions = append(g.Positions, mgl64.Vec3{0, half, 0})
	bottomCenter := len(g.Positions)
	g.Positions = append(g.Positions, mgl64.Vec3{0, -half, 0})

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		t0, t1 := i, j
		b0, b1 := n+i, n+j

		// Side quad
		g.Triangles = append(g.Triangles, [3]int{t0, b0, t1})
		g.Triangles = append(g.Triangles, [3]int{b0, b1, t1})

		// Caps
		g.Triangles = append(g.Triangles, [3]int{topCenter, t0, t1})
		g.Triangles = append(g.Triangles, [3]int{bottomCenter, b1, b0})
	}

	return g
}

// Box builds an axis-aligned box centred at the origin.
func Box(width, height, depth float64) *Geometry {
	x, y, z := width/2, height/2, depth/2

	g := &Geometry{
		Positions: []mgl64.Vec3{
			{-x, -y, -z}, // 0
			{x, -y, -z},  // 1
			{x, y, -z},   // 2
			{-x, y, -z},  // 3
			{-x, -y, z},  // 4
			{x, -y, z},   // 5
			{x, y, z},    // 6
			{-x, y, z},   // 7
		},
		Triangles: [][3]int{
			{4, 5, 6}, {4, 6, 7}, // +Z
			{1, 0, 3}, {1, 3, 2}, // -Z
			{5, 1, 2}, {5, 2, 6}, // +X
			{0, 4, 7}, {0, 7, 3}, // -X
			{7, 6, 2}, {7, 2, 3}, // +Y
			{0, 1, 5}, {0, 5, 4}, // -Y
		},
	}
	return g
}
