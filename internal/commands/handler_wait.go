package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

const maxWaitTicks = 600

// WaitHandlerFactory creates handlers that let a number of frames pass, so held keys keep
// moving the player.
type WaitHandlerFactory struct{}

func (f *WaitHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *WaitHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *WaitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		ticks := 1
		if n, ok := cmdCtx.Inputs["ticks"].(int); ok {
			ticks = n
		}
		if ticks < 1 || ticks > maxWaitTicks {
			return NewUserError(fmt.Sprintf("You can wait between 1 and %d ticks.", maxWaitTicks))
		}

		// Each Do completes on a separate tick.
		for range ticks {
			err := cmdCtx.Actor.Do(ctx, func(*game.Session) error { return nil })
			if err != nil {
				return err
			}
		}
		return nil
	}, nil
}
