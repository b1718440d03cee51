// Package scene implements a small retained-mode scene graph.
//
// Nodes carry a local translation and an XYZ Euler rotation. World
// transforms are derived on traversal; nothing is cached, so mutating a
// node's rotation between frames is all an animation needs to do.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"fan-scene/internal/geometry"
)

// Material is a Phong surface description. Colors are 0xRRGGBB in sRGB.
type Material struct {
	Color     uint32
	Specular  uint32
	Shininess float64
}

// NewPhong returns a material with the default specular response.
func NewPhong(color uint32) Material {
	return Material{Color: color, Specular: 0x111111, Shininess: 30}
}

// Mesh binds a geometry to a material.
type Mesh struct {
	Geometry *geometry.Geometry
	Material Material
}

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     uint32
	Intensity float64
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     uint32
	Intensity float64
	Position  mgl64.Vec3
}

// Direction returns the unit vector pointing from the surface toward the light.
func (l DirectionalLight) Direction() mgl64.Vec3 {
	if l.Position.Len() < 1e-12 {
		return mgl64.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// Node is a transform in the graph. A node with a nil Mesh is a pivot.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler XYZ, radians
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

// NewNode returns an empty pivot.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// NewMesh returns a node that draws g with m.
func NewMesh(name string, g *geometry.Geometry, m Material) *Node {
	return &Node{Name: name, Mesh: &Mesh{Geometry: g, Material: m}}
}

// Add attaches child to n, detaching it from its previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Parent returns nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Local returns T·Rx·Ry·Rz.
func (n *Node) Local() mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	m = m.Mul4(mgl64.HomogRotate3DX(n.Rotation[0]))
	m = m.Mul4(mgl64.HomogRotate3DY(n.Rotation[1]))
	m = m.Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
	return m
}

// World returns the node's transform composed with all of its ancestors.
func (n *Node) World() mgl64.Mat4 {
	m := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Local().Mul4(m)
	}
	return m
}

// Scene is the root of a graph plus its lighting.
type Scene struct {
	Root        *Node
	Background  uint32
	Ambient     AmbientLight
	Directional []DirectionalLight
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{Root: NewNode("root")}
}

// Add attaches n to the scene root.
func (s *Scene) Add(n *Node) {
	s.Root.Add(n)
}

// Walk visits every node depth-first in insertion order, passing the
// accumulated world transform.
func (s *Scene) Walk(fn func(n *Node, world mgl64.Mat4)) {
	walk(s.Root, mgl64.Ident4(), fn)
}

func walk(n *Node, parent mgl64.Mat4, fn func(*Node, mgl64.Mat4)) {
	world := parent.Mul4(n.Local())
	fn(n, world)
	for _, c := range n.children {
		walk(c, world, fn)
	}
}

// Find returns the first node named name, or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Walk(func(n *Node, _ mgl64.Mat4) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

// Count returns the number of nodes including the root.
func (s *Scene) Count() int {
	c := 0
	s.Walk(func(*Node, mgl64.Mat4) { c++ })
	return c
}
