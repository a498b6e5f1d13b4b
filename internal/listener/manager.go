package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/session"
)

const msgServerFull = "The adventure is full right now. Please try again later.\n"

// SessionRunner plays one text session over a connection.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter) error
}

type ConnectionManager struct {
	runner SessionRunner
}

func NewConnectionManager(runner SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: runner,
	}
}

// AcceptConnection plays one text session on conn and returns when it ends.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	logger := slog.With("conn", uuid.NewString())

	err := m.runner.RunSession(ctx, conn)
	switch {
	case err == nil:
		logger.DebugContext(ctx, "player session ended")
	case errors.Is(err, session.ErrFull):
		logger.InfoContext(ctx, "turned away player", "error", err)
		if _, werr := io.WriteString(conn, msgServerFull); werr != nil {
			logger.DebugContext(ctx, "writing to connection", "error", werr)
		}
	default:
		logger.WarnContext(ctx, "player session", "error", err)
	}
}
