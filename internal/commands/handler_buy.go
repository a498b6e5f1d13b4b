package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// BuyHandlerFactory creates handlers that buy the final key from the wizard.
type BuyHandlerFactory struct{}

func (f *BuyHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *BuyHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *BuyHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		return cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			_, err := g.BuyKey()
			return err
		})
	}, nil
}
