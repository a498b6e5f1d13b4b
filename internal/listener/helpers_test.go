package listener

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-adventure/internal/storage"
)

// memBus is an in-process Subscriber and messaging.Bus.
type memBus struct {
	mu   sync.Mutex
	subs map[string]map[int]func([]byte)
	next int
	fail bool
}

func newMemBus() *memBus {
	return &memBus{subs: map[string]map[int]func([]byte){}}
}

func (b *memBus) Subscribe(subject string, handler func([]byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return nil, errors.New("bus down")
	}
	if b.subs[subject] == nil {
		b.subs[subject] = map[int]func([]byte){}
	}
	id := b.next
	b.next++
	b.subs[subject][id] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[subject], id)
	}, nil
}

func (b *memBus) Publish(subject string, data []byte) error {
	b.mu.Lock()
	var handlers []func([]byte)
	for _, h := range b.subs[subject] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(data)
	}
	return nil
}

func loadRiddles(t *testing.T) *game.RiddleBook {
	t.Helper()
	store, err := storage.NewFileStore[*game.Riddle]("../../assets/riddles")
	if err != nil {
		t.Fatalf("loading riddles: %v", err)
	}
	book, err := game.NewRiddleBook(store)
	if err != nil {
		t.Fatalf("indexing riddles: %v", err)
	}
	return book
}

func loadModels(t *testing.T) assets.Loader {
	t.Helper()
	models, err := storage.NewFileStore[*assets.ModelSpec]("../../assets/models")
	if err != nil {
		t.Fatalf("loading models: %v", err)
	}
	return assets.NewStoreLoader(models)
}

type rockOpponent struct{}

func (rockOpponent) Choose() game.Choice { return game.Rock }

// readyGame returns a game with the shipped models loaded.
func readyGame(t *testing.T) *game.Session {
	t.Helper()

	cfg := game.DefaultConfig()
	g := game.NewSession(cfg, loadRiddles(t), rockOpponent{})

	reqs := cfg.Manifest.Requests(rand.New(rand.NewPCG(1, 2)))
	results := assets.LoadAll(context.Background(), loadModels(t), reqs)
	for range reqs {
		g.HandleLoaded(<-results)
	}
	if !g.Ready() {
		t.Fatal("game should be ready")
	}
	g.Notices()
	return g
}

// newRunningSessions returns a session manager ticked every millisecond until the test ends.
func newRunningSessions(t *testing.T, bus *memBus) *session.Manager {
	t.Helper()

	m := session.NewManager(game.DefaultConfig(), loadRiddles(t), loadModels(t),
		messaging.NewSessionPublisher(bus), session.WithFrameLength(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	d := driver.NewFrameDriver([]driver.Manager{m}, driver.WithFrameLength(time.Millisecond))
	go func() { _ = d.Start(ctx) }()

	return m
}
