package commands

import (
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

var gameErrorMessages = []struct {
	err error
	msg string
}{
	{game.ErrNotReady, "The world is still loading. Try again in a moment."},
	{game.ErrNoRiddle, "There is no riddle to answer right now."},
	{game.ErrUnknownCategory, "There is no such riddle."},
	{game.ErrRiddleNotFound, "There is no such riddle."},
	{game.ErrRPSUnavailable, "Click the bulldog to start a round first."},
	{game.ErrInvalidChoice, "Choose rock, paper or scissors."},
	{game.ErrUnknownInteractable, "There is nothing like that here."},
	{game.ErrInvalidViewport, "That is not a valid screen size."},
}

// userFacing converts game rule violations into user errors. Anything else is returned as is.
func userFacing(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range gameErrorMessages {
		if errors.Is(err, m.err) {
			return NewUserError(m.msg)
		}
	}
	return err
}
