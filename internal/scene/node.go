package scene

import (
	"github.com/pixil98/go-adventure/internal/geom"
)

// Kind tags a node as something the player can interact with.
type Kind string

const (
	KindNone    Kind = ""
	KindWizard  Kind = "wizard"
	KindBulldog Kind = "bulldog"
	KindHutDoor Kind = "hutDoor"
	KindStone   Kind = "stone"
)

// Valid reports whether k is one of the interactable kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindWizard, KindBulldog, KindHutDoor, KindStone:
		return true
	default:
		return false
	}
}

// Node is an element of a model's scene graph. Mesh is the node's own geometry in local space
// and is empty for pure containers.
type Node struct {
	Name     string
	Kind     Kind
	Mesh     geom.Box
	Offset   geom.Vec3
	Scale    geom.Vec3
	Parent   *Node
	Children []*Node

	// Rotation is presentation state (e.g. an opening door). It does not affect bounds.
	RotationY float64
}

// NewNode creates a node with unit scale and no geometry.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Mesh:  geom.EmptyBox(),
		Scale: geom.V(1, 1, 1),
	}
}

// Add attaches child to n.
func (n *Node) Add(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	if n.Parent == nil {
		return
	}
	siblings := n.Parent.Children
	for i, c := range siblings {
		if c == n {
			n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// Find returns the first node named name in n's subtree, n included, depth first.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and every descendant depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() geom.Vec3 {
	if n.Parent == nil {
		return n.Offset
	}
	return n.Parent.toWorld(n.Offset)
}

// toWorld maps a point in n's local space to world space.
func (n *Node) toWorld(p geom.Vec3) geom.Vec3 {
	p = p.Mul(n.Scale).Add(n.Offset)
	if n.Parent == nil {
		return p
	}
	return n.Parent.toWorld(p)
}

// WorldMesh returns the node's own geometry in world space.
func (n *Node) WorldMesh() geom.Box {
	if n.Mesh.IsEmpty() {
		return n.Mesh
	}
	lo := n.toWorld(n.Mesh.Min)
	hi := n.toWorld(n.Mesh.Max)
	return geom.EmptyBox().
		Union(geom.Box{Min: lo, Max: lo}).
		Union(geom.Box{Min: hi, Max: hi})
}

// Bounds returns the world-space box enclosing all geometry in n's subtree.
func (n *Node) Bounds() geom.Box {
	b := geom.EmptyBox()
	n.Walk(func(c *Node) {
		b = b.Union(c.WorldMesh())
	})
	return b
}

// Tagged walks up from n to the nearest ancestor carrying a kind, n included.
func (n *Node) Tagged() *Node {
	for c := n; c != nil; c = c.Parent {
		if c.Kind != KindNone {
			return c
		}
	}
	return nil
}
