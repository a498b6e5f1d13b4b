package game

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/scene"
)

const frame = time.Second / 60

// mockRiddleStore implements storage.Storer[*Riddle] for testing
type mockRiddleStore map[string]*Riddle

func (m mockRiddleStore) Get(id string) *Riddle {
	return m[id]
}

func (m mockRiddleStore) GetAll() map[string]*Riddle {
	out := map[string]*Riddle{}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (m mockRiddleStore) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func testRiddles() mockRiddleStore {
	return mockRiddleStore{
		"time":  {Category: CategoryBulldog, Question: "Что всегда идет, но никогда не приходит?", Answer: "время"},
		"sleep": {Category: CategoryHut, Question: "Что можно увидеть с закрытыми глазами?", Answer: "сон"},
		"pit":   {Category: CategoryBunker, Question: "Чем больше берешь, тем больше становится.", Answer: "яма"},
		"name":  {Category: CategoryFinal, Question: "Что принадлежит вам, но другие используют это чаще, чем вы?", Answer: "имя"},
	}
}

type fixedOpponent Choice

func (o fixedOpponent) Choose() Choice {
	return Choice(o)
}

func meshNode(name string, min, max geom.Vec3) *scene.Node {
	n := scene.NewNode(name)
	n.Mesh = geom.Box{Min: min, Max: max}
	return n
}

// buildModel returns the node tree a loader would produce for model.
func buildModel(model string, withDoor bool) *scene.Node {
	root := scene.NewNode(model)
	switch model {
	case "hut":
		root.Add(meshNode("Walls", geom.V(-1.5, 0, -1.5), geom.V(1.5, 1.4, 0)))
		if withDoor {
			door := scene.NewNode("DoorAndWindow")
			door.Offset = geom.V(0.75, 0, 0)
			door.Add(meshNode("DoorLeaf", geom.V(-0.25, 0, -0.05), geom.V(0.25, 1.1, 0.05)))
			root.Add(door)
		}
	case "wizard":
		root.Add(meshNode("Robe", geom.V(-0.4, 0, -0.4), geom.V(0.4, 1.2, 0.4)))
	default:
		root.Mesh = geom.Box{Min: geom.V(-0.4, 0, -0.4), Max: geom.V(0.4, 0.5, 0.4)}
	}
	return root
}

var stonePositions = []geom.Vec3{geom.V(-15, 0, -15), geom.V(15, 0, 15), geom.V(-15, 0, 15)}

// testRequests expands the default manifest with stones at fixed positions.
func testRequests(cfg Config) []assets.Request {
	var reqs []assets.Request
	stone := 0
	for _, p := range cfg.Manifest {
		n := max(p.Count, 1)
		for i := 0; i < n; i++ {
			req := assets.Request{Placement: p, Instance: p.Name, Position: p.Position}
			if p.Role == assets.RoleCollectible {
				req.Instance = fmt.Sprintf("%s_%d", p.Name, i)
				req.Position = stonePositions[stone%len(stonePositions)]
				stone++
			}
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func loaded(req assets.Request, withDoor bool) assets.Result {
	root := buildModel(req.Model, withDoor)
	root.Name = req.Instance
	root.Offset = req.Position
	root.Scale = geom.V(req.Scale, req.Scale, req.Scale)
	return assets.Result{Request: req, Root: root}
}

func newTestSession(t *testing.T, opp Choice) *Session {
	t.Helper()
	book, err := NewRiddleBook(testRiddles())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewSession(DefaultConfig(), book, fixedOpponent(opp))
}

// readySession returns a session with every default asset loaded.
func readySession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t, Rock)
	for _, req := range testRequests(s.cfg) {
		s.HandleLoaded(loaded(req, true))
	}
	if !s.Ready() {
		t.Fatal("session should be ready")
	}
	s.Notices()
	return s
}
