package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// KeyHandlerFactory creates handlers that press or release a movement key.
// Config:
//   - code (required): template for the key code, e.g. "Key{{ .Inputs.key | upper }}"
//   - state (required): "down" or "up"
type KeyHandlerFactory struct{}

func (f *KeyHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "code", Required: true},
			{Name: "state", Required: true},
		},
	}
}

func (f *KeyHandlerFactory) ValidateConfig(config map[string]any) error {
	state, _ := config["state"].(string)
	if state != "down" && state != "up" {
		return fmt.Errorf("state must be \"down\" or \"up\", got %q", state)
	}
	return nil
}

func (f *KeyHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		code := cmdCtx.Config["code"]
		down := cmdCtx.Config["state"] == "down"

		var bound bool
		err := cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			if down {
				bound = g.KeyDown(code)
			} else {
				bound = g.KeyUp(code)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !bound {
			return NewUserError(fmt.Sprintf("%s is not a movement key.", code))
		}
		return nil
	}, nil
}
