package scene

import (
	"math"

	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/geom"
)

// Event is a resolved click on an interactable.
type Event struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
}

// Resolver turns pointer clicks into interaction events. It never mutates the registry.
type Resolver struct {
	registry *Registry
}

func NewResolver(r *Registry) *Resolver {
	return &Resolver{registry: r}
}

// ResolveClick projects client coordinates through view and returns the nearest tagged object.
func (r *Resolver) ResolveClick(view camera.View, x, y float64) (Event, bool) {
	ray, ok := view.ScreenRay(x, y)
	if !ok {
		return Event{}, false
	}
	return r.Resolve(ray)
}

// Resolve returns the interactable owning the nearest mesh hit by ray.
func (r *Resolver) Resolve(ray geom.Ray) (Event, bool) {
	var nearest *Node
	best := math.Inf(1)

	for _, it := range r.registry.All() {
		it.Root.Walk(func(n *Node) {
			dist, hit := ray.IntersectBox(n.WorldMesh())
			if hit && dist < best {
				best = dist
				nearest = n
			}
		})
	}
	if nearest == nil {
		return Event{}, false
	}

	tagged := nearest.Tagged()
	if tagged == nil {
		return Event{}, false
	}
	it := r.registry.ForNode(tagged)
	if it == nil {
		return Event{}, false
	}
	return Event{ID: it.ID, Kind: it.Kind}, true
}
