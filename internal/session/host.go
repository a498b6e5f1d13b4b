package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-errors"
)

// Publisher delivers session updates to whoever is listening.
type Publisher interface {
	PublishSnapshot(id string, data []byte) error
	PublishMessage(id string, text string) error
	PublishStatus(id string, data []byte) error
}

type action struct {
	fn    func(*game.Session) error
	reply chan error
}

// Host owns one game session. The game is only touched from the driver goroutine; other
// goroutines reach it through Do.
type Host struct {
	id      string
	game    *game.Session
	results <-chan assets.Result
	actions chan action

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once

	lastSnap []byte
	lastCam  geom.Vec3
	lastSaid uint64
}

func newHost(id string, g *game.Session, results <-chan assets.Result, cancel context.CancelFunc, queue int) *Host {
	return &Host{
		id:      id,
		game:    g,
		results: results,
		actions: make(chan action, queue),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

func (h *Host) Id() string {
	return h.id
}

// Done is closed when the session ends.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

// Do queues fn to run against the game on the next tick and waits for its result.
func (h *Host) Do(ctx context.Context, fn func(g *game.Session) error) error {
	a := action{fn: fn, reply: make(chan error, 1)}

	select {
	case h.actions <- a:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrClosed
	}

	select {
	case err := <-a.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrClosed
	}
}

// Snapshot fetches the current presentation view.
func (h *Host) Snapshot(ctx context.Context) (game.Snapshot, error) {
	var snap game.Snapshot
	err := h.Do(ctx, func(g *game.Session) error {
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

func (h *Host) close() {
	h.closeOnce.Do(func() {
		h.cancel()
		close(h.done)
	})
}

// tick drains finished loads and queued actions, advances the game by one frame and
// publishes whatever changed.
func (h *Host) tick(ctx context.Context, delta time.Duration, pub Publisher) error {
	h.drainLoads()
	h.drainActions()
	h.game.Tick(delta)
	return h.publish(ctx, pub)
}

func (h *Host) drainLoads() {
	for {
		select {
		case r, ok := <-h.results:
			if !ok {
				h.results = nil
				return
			}
			h.game.HandleLoaded(r)
		default:
			return
		}
	}
}

func (h *Host) drainActions() {
	for range len(h.actions) {
		a := <-h.actions
		a.reply <- a.fn(h.game)
	}
}

func (h *Host) publish(ctx context.Context, pub Publisher) error {
	el := errors.NewErrorList()

	for _, n := range h.game.Notices() {
		if n.Level == game.LevelWarn {
			slog.WarnContext(ctx, "session status", "session", h.id, "status", n.Text)
		}
		data, err := json.Marshal(n)
		if err != nil {
			el.Add(fmt.Errorf("encoding notice: %w", err))
			continue
		}
		el.Add(pub.PublishStatus(h.id, data))
	}

	if seq := h.game.MessageSeq(); seq != h.lastSaid {
		h.lastSaid = seq
		el.Add(pub.PublishMessage(h.id, h.game.Message()))
	}

	el.Add(h.publishSnapshot(pub))

	return el.Err()
}

// cameraTolerance is how far the camera may drift from the last published position before the
// drift alone is worth a snapshot. The follow camera eases forever and never lands exactly.
const cameraTolerance = 1e-3

// publishSnapshot sends the snapshot only when something other than the tick counter changed.
func (h *Host) publishSnapshot(pub Publisher) error {
	snap := h.game.Snapshot()
	tick, cam := snap.Tick, snap.Camera.Position
	snap.Tick = 0
	snap.Camera.Position = geom.Vec3{}

	key, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if bytes.Equal(key, h.lastSnap) && cam.Sub(h.lastCam).Length() <= cameraTolerance {
		return nil
	}
	h.lastSnap = key
	h.lastCam = cam

	snap.Tick = tick
	snap.Camera.Position = cam
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return pub.PublishSnapshot(h.id, data)
}
