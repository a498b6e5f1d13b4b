package session

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/game"
)

const DefaultQueueSize = 64

// Manager runs every live game session. It is ticked by the frame driver.
type Manager struct {
	cfg     game.Config
	riddles *game.RiddleBook
	loader  assets.Loader
	pub     Publisher

	frameLength time.Duration
	queueSize   int
	maxSessions int
	newRand     func() *rand.Rand

	mu    sync.Mutex
	hosts map[string]*Host
}

func NewManager(cfg game.Config, riddles *game.RiddleBook, loader assets.Loader, pub Publisher, opts ...ManagerOpt) *Manager {
	m := &Manager{
		cfg:         cfg,
		riddles:     riddles,
		loader:      loader,
		pub:         pub,
		frameLength: driver.DefaultFrameLength,
		queueSize:   DefaultQueueSize,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		hosts: map[string]*Host{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start blocks until ctx is done and then ends every session.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, h := range m.hosts {
		h.close()
		delete(m.hosts, id)
	}
	return nil
}

// Open starts a new session and begins loading its assets. Loads stop when ctx is done.
func (m *Manager) Open(ctx context.Context) (*Host, error) {
	if m.maxSessions > 0 && m.live() >= m.maxSessions {
		return nil, fmt.Errorf("%d live: %w", m.maxSessions, ErrFull)
	}

	id := uuid.NewString()
	rng := m.newRand()

	g := game.NewSession(m.cfg, m.riddles, game.NewRandomOpponent(rng))
	reqs := m.cfg.Manifest.Requests(rng)

	loadCtx, cancel := context.WithCancel(ctx)
	h := newHost(id, g, assets.LoadAll(loadCtx, m.loader, reqs), cancel, m.queueSize)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hosts[id]; ok {
		cancel()
		return nil, fmt.Errorf("session %s already exists", id)
	}
	// Re-checked under the lock; another Open may have won the last slot.
	if m.maxSessions > 0 && len(m.hosts) >= m.maxSessions {
		cancel()
		return nil, fmt.Errorf("%d live: %w", m.maxSessions, ErrFull)
	}
	m.hosts[id] = h

	slog.InfoContext(ctx, "session opened", "session", id, "assets", len(reqs))
	return h, nil
}

// Close ends a session. Pending Do calls return ErrClosed.
func (m *Manager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	h, ok := m.hosts[id]
	delete(m.hosts, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	h.close()

	slog.InfoContext(ctx, "session closed", "session", id)
	return nil
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hosts[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	return h, nil
}

func (m *Manager) live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hosts)
}

// Ids returns the live session ids in sorted order.
func (m *Manager) Ids() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.hosts))
}

// Tick advances every session by one frame. Publishing problems are logged and never stop the
// driver.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	hosts := slices.Collect(maps.Values(m.hosts))
	m.mu.Unlock()

	for _, h := range hosts {
		if err := h.tick(ctx, m.frameLength, m.pub); err != nil {
			slog.WarnContext(ctx, "publishing session update", "session", h.id, "error", err)
		}
	}
	return nil
}
