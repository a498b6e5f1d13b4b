package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// RiddleHandlerFactory creates handlers that open a riddle panel.
// Config:
//   - category (required): template for the riddle category
type RiddleHandlerFactory struct{}

func (f *RiddleHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "category", Required: true},
		},
	}
}

func (f *RiddleHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *RiddleHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		category := game.Category(cmdCtx.Config["category"])
		return cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			_, err := g.OpenRiddle(category)
			return err
		})
	}, nil
}

// AnswerHandlerFactory creates handlers that answer the active riddle.
// Config:
//   - text (required): template for the answer
type AnswerHandlerFactory struct{}

func (f *AnswerHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "text", Required: true},
		},
	}
}

func (f *AnswerHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *AnswerHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		text := cmdCtx.Config["text"]
		return cmdCtx.Actor.Do(ctx, func(g *game.Session) error {
			_, err := g.SubmitAnswer(text)
			return err
		})
	}, nil
}
