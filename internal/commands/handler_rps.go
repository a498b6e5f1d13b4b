package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// RPSHandlerFactory creates handlers that play a round of rock-paper-scissors.
// Config:
//   - choice (required): template for the player's hand
type RPSHandlerFactory struct{}

func (f *RPSHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "choice", Required: true},
		},
	}
}

func (f *RPSHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *RPSHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		choice := game.Choice(cmdCtx.Config["choice"])
		return cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			_, err := g.ChooseRPS(choice)
			return err
		})
	}, nil
}
