package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// Interactable is a registered, clickable world object.
type Interactable struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Root *Node  `json:"-"`
}

// Registry maps identities to interactable objects. Registration order is preserved.
type Registry struct {
	items  map[string]*Interactable
	byRoot map[*Node]*Interactable
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{
		items:  map[string]*Interactable{},
		byRoot: map[*Node]*Interactable{},
	}
}

// Register tags root with kind and adds it to the registry.
func (r *Registry) Register(root *Node, kind Kind) (*Interactable, error) {
	if root == nil {
		return nil, fmt.Errorf("registering %s: node is nil", kind)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("registering %q: invalid kind %q", root.Name, kind)
	}
	if _, ok := r.byRoot[root]; ok {
		return nil, fmt.Errorf("registering %q: already registered", root.Name)
	}

	root.Kind = kind
	it := &Interactable{
		ID:   uuid.New().String(),
		Kind: kind,
		Root: root,
	}
	r.items[it.ID] = it
	r.byRoot[root] = it
	r.order = append(r.order, it.ID)
	return it, nil
}

// Get returns the interactable with id, or nil.
func (r *Registry) Get(id string) *Interactable {
	return r.items[id]
}

// ForNode returns the interactable registered with root, or nil.
func (r *Registry) ForNode(root *Node) *Interactable {
	return r.byRoot[root]
}

// Remove drops id from the registry. It returns false if id was not registered.
func (r *Registry) Remove(id string) bool {
	it, ok := r.items[id]
	if !ok {
		return false
	}
	delete(r.items, id)
	delete(r.byRoot, it.Root)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered interactables.
func (r *Registry) Len() int {
	return len(r.items)
}

// All returns the interactables in registration order.
func (r *Registry) All() []*Interactable {
	out := make([]*Interactable, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// FirstOfKind returns the earliest registered interactable of kind, or nil.
func (r *Registry) FirstOfKind(kind Kind) *Interactable {
	for _, id := range r.order {
		if it := r.items[id]; it.Kind == kind {
			return it
		}
	}
	return nil
}
