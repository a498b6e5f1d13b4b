package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// LookHandlerFactory creates handlers that describe the session as text.
// Config:
//   - format (required, raw): template rendered over a LookContext
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "format", Required: true, Raw: true},
		},
	}
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	format, _ := config["format"].(string)
	if strings.TrimSpace(format) == "" {
		return fmt.Errorf("format must not be empty")
	}
	return nil
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		var snap game.Snapshot
		err := cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			snap = g.Snapshot()
			return nil
		})
		if err != nil {
			return err
		}

		text, err := ExpandTemplate(cmdCtx.Config["format"], &LookContext{Snapshot: snap})
		if err != nil {
			return fmt.Errorf("expanding look format: %w", err)
		}
		return cmdCtx.Actor.Reply(display.Wrap(strings.TrimRight(text, "\n")))
	}, nil
}
