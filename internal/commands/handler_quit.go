package commands

import (
	"context"
)

// QuitHandlerFactory creates handlers that end the connection.
// Config:
//   - message (optional): farewell written before disconnecting
type QuitHandlerFactory struct{}

func (f *QuitHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "message", Required: false},
		},
	}
}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if msg := cmdCtx.Config["message"]; msg != "" {
			if err := cmdCtx.Actor.Reply(msg); err != nil {
				return err
			}
		}
		cmdCtx.Actor.Quit()
		return nil
	}, nil
}
