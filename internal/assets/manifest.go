package assets

import (
	"fmt"
	"math/rand/v2"

	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/scene"
	"github.com/pixil98/go-errors"
)

// Role is the part an asset plays in the game.
type Role string

const (
	RolePlayer      Role = "player"
	RoleBuilding    Role = "building"
	RoleCollectible Role = "collectible"
	RoleNPC         Role = "npc"
	RoleAntagonist  Role = "antagonist"
)

// Placement describes where and how a model is put into the world.
type Placement struct {
	Name     string     `json:"name"`
	Model    string     `json:"model"`
	Role     Role       `json:"role"`
	Kind     scene.Kind `json:"kind,omitempty"`
	Position geom.Vec3  `json:"position"`
	Scale    float64    `json:"scale"`
	// Count places several instances of the same model. Zero means one.
	Count int `json:"count,omitempty"`
	// Scatter randomizes X and Z within +-Scatter instead of using Position.
	Scatter float64 `json:"scatter,omitempty"`
	// Door names the sub-node of a building used as its door.
	Door string `json:"door,omitempty"`
}

func (p Placement) instances() int {
	if p.Count <= 0 {
		return 1
	}
	return p.Count
}

func (p Placement) validate() error {
	el := errors.NewErrorList()

	if p.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if p.Model == "" {
		el.Add(fmt.Errorf("model is required"))
	}
	switch p.Role {
	case RolePlayer, RoleBuilding, RoleCollectible, RoleNPC, RoleAntagonist:
	default:
		el.Add(fmt.Errorf("unknown role %q", p.Role))
	}
	if p.Kind != scene.KindNone && !p.Kind.Valid() {
		el.Add(fmt.Errorf("unknown kind %q", p.Kind))
	}
	if p.Scale <= 0 {
		el.Add(fmt.Errorf("scale must be positive"))
	}
	if p.Count < 0 {
		el.Add(fmt.Errorf("count must not be negative"))
	}
	if p.Scatter < 0 {
		el.Add(fmt.Errorf("scatter must not be negative"))
	}
	if (p.Role == RolePlayer || p.Role == RoleBuilding) && p.instances() != 1 {
		el.Add(fmt.Errorf("%s placements must have a single instance", p.Role))
	}

	return el.Err()
}

// Manifest is the full set of placements loaded into a session.
type Manifest []Placement

// DefaultManifest is the stock scene: a player, a hut, three stones, a wizard and a bulldog.
func DefaultManifest() Manifest {
	return Manifest{
		{Name: "player", Model: "player", Role: RolePlayer, Position: geom.V(0, 0, 10), Scale: 1.9},
		{Name: "hut", Model: "hut", Role: RoleBuilding, Position: geom.V(10, 0, 10), Scale: 2, Door: "DoorAndWindow"},
		{Name: "stone", Model: "stone", Role: RoleCollectible, Kind: scene.KindStone, Scale: 1.5, Count: 3, Scatter: 20},
		{Name: "wizard", Model: "wizard", Role: RoleNPC, Kind: scene.KindWizard, Position: geom.V(5, 0, -5), Scale: 2},
		{Name: "bulldog", Model: "bulldog", Role: RoleAntagonist, Kind: scene.KindBulldog, Position: geom.V(-5, 0, 5), Scale: 3},
	}
}

func (m Manifest) Validate() error {
	el := errors.NewErrorList()

	roles := map[Role]int{}
	names := map[string]bool{}
	for i, p := range m {
		if err := p.validate(); err != nil {
			el.Add(fmt.Errorf("placement %d: %w", i, err))
		}
		if names[p.Name] {
			el.Add(fmt.Errorf("placement %d: duplicate name %q", i, p.Name))
		}
		names[p.Name] = true
		roles[p.Role]++
	}

	for _, r := range []Role{RolePlayer, RoleBuilding} {
		if roles[r] != 1 {
			el.Add(fmt.Errorf("exactly one %s placement is required, found %d", r, roles[r]))
		}
	}

	return el.Err()
}

// Find returns the first placement with role.
func (m Manifest) Find(role Role) (Placement, bool) {
	for _, p := range m {
		if p.Role == role {
			return p, true
		}
	}
	return Placement{}, false
}

// Expected returns the number of loads the manifest produces.
func (m Manifest) Expected() int {
	n := 0
	for _, p := range m {
		n += p.instances()
	}
	return n
}

// Requests expands the manifest into one request per instance. Scattered positions are drawn
// from rng.
func (m Manifest) Requests(rng *rand.Rand) []Request {
	var reqs []Request
	for _, p := range m {
		n := p.instances()
		for i := 0; i < n; i++ {
			name := p.Name
			if n > 1 {
				name = fmt.Sprintf("%s_%d", p.Name, i)
			}

			pos := p.Position
			if p.Scatter > 0 {
				pos.X = rng.Float64()*2*p.Scatter - p.Scatter
				pos.Z = rng.Float64()*2*p.Scatter - p.Scatter
			}

			reqs = append(reqs, Request{Placement: p, Instance: name, Position: pos})
		}
	}
	return reqs
}
