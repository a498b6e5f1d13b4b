package game

import (
	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/scene"
)

// Snapshot is the presentation view of a session.
type Snapshot struct {
	Tick     uint64 `json:"tick"`
	Ready    bool   `json:"ready"`
	Loaded   int    `json:"loaded"`
	Expected int    `json:"expected"`

	Phase      Phase       `json:"phase"`
	Panel      Panel       `json:"panel"`
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	Inventory  Inventory   `json:"inventory"`
	Riddle     *RiddleView `json:"riddle,omitempty"`
	RPSVisible bool        `json:"rps_visible"`
	Won        bool        `json:"won"`

	Player        Transform          `json:"player"`
	Camera        CameraState        `json:"camera"`
	Door          *DoorView          `json:"door,omitempty"`
	Interactables []InteractableView `json:"interactables"`
}

type RiddleView struct {
	Category Category `json:"category"`
	Question string   `json:"question"`
}

type Transform struct {
	Position geom.Vec3 `json:"position"`
	Yaw      float64   `json:"yaw"`
}

type CameraState struct {
	Position geom.Vec3 `json:"position"`
	Target   geom.Vec3 `json:"target"`
	FovY     float64   `json:"fov_y"`
}

type DoorView struct {
	Angle     float64 `json:"angle"`
	Animating bool    `json:"animating"`
}

type InteractableView struct {
	ID       string     `json:"id"`
	Kind     scene.Kind `json:"kind"`
	Name     string     `json:"name"`
	Position geom.Vec3  `json:"position"`
	Bounds   *geom.Box  `json:"bounds,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.ticks,
		Ready:      s.loading.IsReady(),
		Loaded:     s.loading.Completed(),
		Expected:   s.loading.Expected(),
		Phase:      s.phase,
		Panel:      s.phase.Panel(),
		Message:    s.message,
		Status:     s.status,
		Inventory:  s.inventory,
		RPSVisible: s.rpsVisible,
		Won:        s.won,
		Player: Transform{
			Position: s.player.Position,
			Yaw:      s.player.Yaw,
		},
		Camera: CameraState{
			Position: s.follow.Position,
			Target:   s.follow.Target,
			FovY:     s.cfg.Lens.FovY,
		},
		Interactables: []InteractableView{},
	}

	if s.riddle != nil {
		snap.Riddle = &RiddleView{Category: s.riddle.Category, Question: s.riddle.Question}
	}

	if s.door != nil {
		snap.Door = &DoorView{Angle: s.door.node.RotationY, Animating: s.door.tween != nil}
	}

	for _, it := range s.registry.All() {
		v := InteractableView{
			ID:       it.ID,
			Kind:     it.Kind,
			Name:     it.Root.Name,
			Position: it.Root.WorldPosition(),
		}
		// Empty boxes hold infinities, which json cannot encode.
		if b := it.Root.Bounds(); !b.IsEmpty() {
			v.Bounds = &b
		}
		snap.Interactables = append(snap.Interactables, v)
	}

	return snap
}
