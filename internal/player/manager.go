package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
)

// Sessions opens and closes games.
type Sessions interface {
	Open(ctx context.Context) (*session.Host, error)
	Close(ctx context.Context, id string) error
}

// Subscriber delivers messages published on a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

type PlayerManager struct {
	sessions   Sessions
	cmdHandler *commands.Handler
	subs       Subscriber
}

func NewPlayerManager(cmd *commands.Handler, sessions Sessions, subs Subscriber) *PlayerManager {
	return &PlayerManager{
		sessions:   sessions,
		cmdHandler: cmd,
		subs:       subs,
	}
}

// RunSession opens a fresh game for conn and plays it until the connection ends.
func (m *PlayerManager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	host, err := m.sessions.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	defer func() {
		err := m.sessions.Close(context.WithoutCancel(ctx), host.Id())
		if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
			slog.WarnContext(ctx, "closing session", "session", host.Id(), "error", err)
		}
	}()

	p := NewPlayer(conn, host, m.cmdHandler)

	unsub, err := m.subscribe(host.Id(), p)
	if err != nil {
		return err
	}
	defer unsub()

	err = p.Play(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, session.ErrClosed) {
		return nil
	}
	return err
}

func (m *PlayerManager) subscribe(id string, p *Player) (func(), error) {
	var unsubs []func()
	unsubAll := func() {
		for _, u := range unsubs {
			u()
		}
	}

	subs := map[string]func([]byte){
		messaging.SessionSubject(id, messaging.KindMessage): func(data []byte) { p.Deliver(string(data)) },
		messaging.SessionSubject(id, messaging.KindStatus):  p.DeliverStatus,
	}

	for subject, handler := range subs {
		unsub, err := m.subs.Subscribe(subject, handler)
		if err != nil {
			unsubAll()
			return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		unsubs = append(unsubs, unsub)
	}
	return unsubAll, nil
}
