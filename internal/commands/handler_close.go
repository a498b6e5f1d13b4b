package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// CloseHandlerFactory creates handlers that close the open panel.
// Config:
//   - message (optional): reply once the panel is closed
type CloseHandlerFactory struct{}

func (f *CloseHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "message", Required: false},
		},
	}
}

func (f *CloseHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *CloseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		err := cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			g.ClosePanel()
			return nil
		})
		if err != nil {
			return err
		}
		if msg := cmdCtx.Config["message"]; msg != "" {
			return cmdCtx.Actor.Reply(msg)
		}
		return nil
	}, nil
}
