package commands

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// mockCommandStore implements storage.Storer[*Command] for testing
type mockCommandStore map[string]*Command

func (m mockCommandStore) Get(id string) *Command {
	return m[id]
}

func (m mockCommandStore) GetAll() map[string]*Command {
	out := map[string]*Command{}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (m mockCommandStore) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type mockRiddleStore map[string]*game.Riddle

func (m mockRiddleStore) Get(id string) *game.Riddle { return m[id] }

func (m mockRiddleStore) GetAll() map[string]*game.Riddle { return m }

func (m mockRiddleStore) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// testActor runs actions inline against its own game.
type testActor struct {
	game    *game.Session
	replies []string
	quit    bool
}

func (a *testActor) Do(ctx context.Context, fn func(g *game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(a.game)
}

func (a *testActor) Reply(text string) error {
	a.replies = append(a.replies, text)
	return nil
}

func (a *testActor) Quit() {
	a.quit = true
}

func (a *testActor) lastReply() string {
	if len(a.replies) == 0 {
		return ""
	}
	return a.replies[len(a.replies)-1]
}

// newReadyActor loads the shipped models into a fresh game.
func newReadyActor(t *testing.T) *testActor {
	t.Helper()

	models, err := storage.NewFileStore[*assets.ModelSpec]("../../assets/models")
	if err != nil {
		t.Fatalf("loading models: %v", err)
	}
	book, err := game.NewRiddleBook(mockRiddleStore{
		"sleep": {Category: game.CategoryHut, Question: "Что можно увидеть с закрытыми глазами?", Answer: "сон"},
		"name":  {Category: game.CategoryFinal, Question: "Что принадлежит вам?", Answer: "имя"},
	})
	if err != nil {
		t.Fatalf("indexing riddles: %v", err)
	}

	cfg := game.DefaultConfig()
	rng := rand.New(rand.NewPCG(1, 2))
	g := game.NewSession(cfg, book, game.NewRandomOpponent(rng))

	reqs := cfg.Manifest.Requests(rng)
	results := assets.LoadAll(context.Background(), assets.NewStoreLoader(models), reqs)
	for range reqs {
		g.HandleLoaded(<-results)
	}
	if !g.Ready() {
		t.Fatal("game should be ready")
	}
	g.Notices()

	return &testActor{game: g}
}

func newShippedHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := storage.NewFileStore[*Command]("../../assets/commands")
	if err != nil {
		t.Fatalf("loading commands: %v", err)
	}
	h := NewHandler(store)
	if err := h.CompileAll(); err != nil {
		t.Fatalf("compiling commands: %v", err)
	}
	return h
}
