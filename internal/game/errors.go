package game

import "errors"

var (
	ErrNotReady            = errors.New("scene is not ready")
	ErrNoRiddle            = errors.New("no riddle is active")
	ErrRiddleNotFound      = errors.New("riddle not found")
	ErrUnknownCategory     = errors.New("unknown riddle category")
	ErrRPSUnavailable      = errors.New("rock-paper-scissors is not available")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrUnknownInteractable = errors.New("unknown interactable")
	ErrInvalidViewport     = errors.New("invalid viewport")
)
