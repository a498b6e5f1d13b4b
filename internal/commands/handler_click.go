package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// ClickHandlerFactory creates handlers that click at a pixel of the default viewport.
// Config:
//   - miss_message (optional): reply when nothing is under the pointer
type ClickHandlerFactory struct{}

func (f *ClickHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "miss_message", Required: false},
		},
	}
}

func (f *ClickHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *ClickHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		x, _ := cmdCtx.Inputs["x"].(int)
		y, _ := cmdCtx.Inputs["y"].(int)

		var out game.Outcome
		err := cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			var err error
			out, err = g.Click(float64(x), float64(y))
			return err
		})
		if err != nil {
			return err
		}

		if out == game.OutcomeMissed && cmdCtx.Config["miss_message"] != "" {
			return cmdCtx.Actor.Reply(cmdCtx.Config["miss_message"])
		}
		return nil
	}, nil
}
