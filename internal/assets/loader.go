package assets

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/scene"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Loader produces a scene graph for a model.
type Loader interface {
	Load(ctx context.Context, model string) (*scene.Node, error)
}

// Request is a single placed instance waiting to be loaded.
type Request struct {
	Placement
	Instance string
	Position geom.Vec3
}

// Result is a finished load. Root is nil when Err is set.
type Result struct {
	Request
	Root *scene.Node
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Root != nil
}

// StoreLoader builds models from descriptors held in a store.
type StoreLoader struct {
	models storage.Storer[*ModelSpec]
}

func NewStoreLoader(models storage.Storer[*ModelSpec]) *StoreLoader {
	return &StoreLoader{models: models}
}

func (l *StoreLoader) Load(ctx context.Context, model string) (*scene.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec := l.models.Get(model)
	if spec == nil {
		return nil, fmt.Errorf("model %q: %w", model, ErrModelNotFound)
	}
	return spec.Build(), nil
}

// LoadAll starts every request concurrently. Results arrive on the returned channel in
// completion order. The channel is buffered for every request so loaders never block on a
// reader that has gone away.
func LoadAll(ctx context.Context, l Loader, reqs []Request) <-chan Result {
	out := make(chan Result, len(reqs))
	for _, req := range reqs {
		go func() {
			root, err := l.Load(ctx, req.Model)
			if err != nil {
				out <- Result{Request: req, Err: fmt.Errorf("loading %s: %w", req.Instance, err)}
				return
			}

			root.Name = req.Instance
			root.Offset = req.Position
			root.Scale = geom.V(req.Scale, req.Scale, req.Scale)
			out <- Result{Request: req, Root: root}
		}()
	}
	return out
}
