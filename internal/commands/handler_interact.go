package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/scene"
)

// InteractHandlerFactory creates handlers that interact with the first object of a kind,
// standing in for a click on it.
// Config:
//   - kind (required): template for the interactable kind
type InteractHandlerFactory struct{}

func (f *InteractHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "kind", Required: true},
		},
	}
}

func (f *InteractHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *InteractHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		kind := scene.Kind(cmdCtx.Config["kind"])
		if !kind.Valid() || kind == scene.KindNone {
			return NewUserError(fmt.Sprintf("You can't interact with %q.", kind))
		}

		return cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			_, err := g.InteractKind(kind)
			return err
		})
	}, nil
}
