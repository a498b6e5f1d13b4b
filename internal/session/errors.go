package session

import "errors"

var (
	ErrClosed          = errors.New("session closed")
	ErrSessionNotFound = errors.New("session not found")
	ErrFull            = errors.New("too many sessions")
)
