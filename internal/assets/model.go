package assets

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/scene"
	"github.com/pixil98/go-errors"
)

// ModelSpec is a stored model descriptor: a tree of named nodes with box geometry.
type ModelSpec struct {
	Description string   `json:"description,omitempty"`
	Root        NodeSpec `json:"root"`
}

func (m *ModelSpec) Validate() error {
	return m.Root.validate("root")
}

// NodeSpec describes one node of a model in its parent's local space.
type NodeSpec struct {
	Name     string     `json:"name"`
	Mesh     *geom.Box  `json:"mesh,omitempty"`
	Offset   geom.Vec3  `json:"offset"`
	Scale    *geom.Vec3 `json:"scale,omitempty"`
	Children []NodeSpec `json:"children,omitempty"`
}

func (n NodeSpec) validate(path string) error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("%s: name is required", path))
	}
	if n.Mesh != nil && n.Mesh.IsEmpty() {
		el.Add(fmt.Errorf("%s: mesh min must not exceed max", path))
	}
	if n.Scale != nil && (n.Scale.X == 0 || n.Scale.Y == 0 || n.Scale.Z == 0) {
		el.Add(fmt.Errorf("%s: scale must be non-zero", path))
	}
	for i, c := range n.Children {
		el.Add(c.validate(fmt.Sprintf("%s.children[%d]", path, i)))
	}

	return el.Err()
}

// Build instantiates a fresh node tree for the model.
func (m *ModelSpec) Build() *scene.Node {
	return m.Root.build()
}

func (n NodeSpec) build() *scene.Node {
	node := scene.NewNode(n.Name)
	node.Offset = n.Offset
	if n.Mesh != nil {
		node.Mesh = *n.Mesh
	}
	if n.Scale != nil {
		node.Scale = *n.Scale
	}
	for _, c := range n.Children {
		node.Add(c.build())
	}
	return node
}
