package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/collision"
	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/input"
	"github.com/pixil98/go-adventure/internal/motion"
	"github.com/pixil98/go-adventure/internal/scene"
)

// Level grades a notice on the status channel.
type Level string

const (
	LevelInfo Level = "info"
	LevelWarn Level = "warn"
)

// Notice is a status channel event worth surfacing outside the snapshot, such as a failed load.
type Notice struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// door is the animated door of the building.
type door struct {
	node  *scene.Node
	tween *Tween
}

// Session is the complete state of one game. It is not safe for concurrent use; the owner must
// call every method from a single goroutine.
type Session struct {
	cfg      Config
	riddles  *RiddleBook
	opponent Opponent

	loading  *assets.Loading
	sampler  *input.Sampler
	player   *motion.Controller
	collide  *collision.Model
	follow   *camera.Follow
	registry *scene.Registry
	resolver *scene.Resolver
	world    *scene.Node
	viewport camera.Viewport

	playerNode *scene.Node
	building   *scene.Node
	doorName   string
	door       *door
	inside     bool

	phase      Phase
	inventory  Inventory
	riddle     *Riddle
	rpsVisible bool
	won        bool
	message    string
	said       uint64
	status     string
	ticks      uint64
	notices    []Notice
}

func NewSession(cfg Config, riddles *RiddleBook, opponent Opponent) *Session {
	spawn := geom.Vec3{}
	if p, ok := cfg.Manifest.Find(assets.RolePlayer); ok {
		spawn = p.Position
	}

	registry := scene.NewRegistry()
	return &Session{
		cfg:       cfg,
		riddles:   riddles,
		opponent:  opponent,
		loading:   assets.NewLoading(cfg.Manifest.Expected()),
		sampler:   input.NewSampler(cfg.Bindings),
		player:    motion.NewController(cfg.Motion, spawn),
		collide:   collision.NewModel(cfg.Door),
		follow:    camera.NewFollow(cfg.Camera),
		registry:  registry,
		resolver:  scene.NewResolver(registry),
		world:     scene.NewNode("world"),
		viewport:  cfg.Viewport,
		phase:     PhaseExplore,
		inventory: Inventory{Coins: cfg.Economy.StartingCoins},
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Inventory() Inventory {
	return s.inventory
}

func (s *Session) Riddle() *Riddle {
	return s.riddle
}

func (s *Session) Message() string {
	return s.message
}

// MessageSeq counts the messages said so far. It changes even when the same text is repeated.
func (s *Session) MessageSeq() uint64 {
	return s.said
}

func (s *Session) say(text string) {
	s.message = text
	s.said++
}

func (s *Session) Status() string {
	return s.status
}

func (s *Session) Won() bool {
	return s.won
}

func (s *Session) RPSVisible() bool {
	return s.rpsVisible
}

func (s *Session) Ready() bool {
	return s.loading.IsReady()
}

func (s *Session) Player() *motion.Controller {
	return s.player
}

func (s *Session) Camera() *camera.Follow {
	return s.follow
}

func (s *Session) Collision() *collision.Model {
	return s.collide
}

func (s *Session) Registry() *scene.Registry {
	return s.registry
}

// Notices returns and clears the pending status notices.
func (s *Session) Notices() []Notice {
	out := s.notices
	s.notices = nil
	return out
}

func (s *Session) notify(level Level, text string) {
	s.status = text
	s.notices = append(s.notices, Notice{Level: level, Text: text})
}

// HandleLoaded records a finished asset load and places the asset in the world.
func (s *Session) HandleLoaded(r assets.Result) {
	became := s.loading.Complete(r)

	if r.OK() {
		s.place(r)
	} else {
		s.notify(LevelWarn, render(statusLoadFailed, map[string]any{
			"Name":  r.Instance,
			"Error": fmt.Sprint(r.Err),
		}))
	}

	s.notify(LevelInfo, render(statusLoaded, map[string]any{
		"Completed": s.loading.Completed(),
		"Expected":  s.loading.Expected(),
		"Name":      r.Instance,
		"OK":        r.OK(),
	}))

	if became {
		s.activate()
	}
}

func (s *Session) place(r assets.Result) {
	s.world.Add(r.Root)

	switch r.Role {
	case assets.RolePlayer:
		s.playerNode = r.Root
		s.syncPlayerNode()
	case assets.RoleBuilding:
		s.building = r.Root
		s.doorName = r.Door
	default:
		if r.Kind == scene.KindNone {
			return
		}
		if _, err := s.registry.Register(r.Root, r.Kind); err != nil {
			s.notify(LevelWarn, err.Error())
		}
	}
}

// activate runs once, when the last expected load completes.
func (s *Session) activate() {
	s.notify(LevelInfo, render(statusReady, nil))

	if s.building == nil {
		return
	}
	s.collide.SetBuilding(s.building.Bounds())

	node := s.building.Find(s.doorName)
	if s.doorName == "" || node == nil {
		s.notify(LevelWarn, render(statusDoorMissing, map[string]any{"Door": s.doorName}))
		return
	}
	if _, err := s.registry.Register(node, scene.KindHutDoor); err != nil {
		s.notify(LevelWarn, err.Error())
		return
	}

	// The visible leaf is the first child when the door is a container.
	target := node
	if len(node.Children) > 0 {
		target = node.Children[0]
	}
	s.door = &door{node: target}
}

// narratingCollider remembers the last verdict so the status line can explain a blocked move.
type narratingCollider struct {
	model *collision.Model
	last  collision.Result
}

func (c *narratingCollider) Blocked(pos geom.Vec3, halfWidth, height float64) bool {
	c.last = c.model.Check(pos, halfWidth, height)
	return c.last.Blocked
}

// Tick advances the session by one frame. Gameplay is skipped until every asset has loaded.
func (s *Session) Tick(delta time.Duration) {
	s.ticks++
	s.advanceDoor(delta)

	if !s.loading.IsReady() {
		return
	}

	intent := s.sampler.Sample(s.player.Yaw)
	if intent.Moving {
		col := &narratingCollider{model: s.collide}
		if s.player.Step(intent, delta, col) {
			s.status = render(statusMoving, s.player.Position)
		} else if col.last.Blocked {
			s.status = render(statusCollision, map[string]any{"Reason": string(col.last.Reason)})
		}
	}
	s.syncPlayerNode()

	s.checkZone()

	if s.phase == PhaseExplore {
		s.follow.Update(s.player.Position, s.player.Yaw)
	}
}

func (s *Session) syncPlayerNode() {
	if s.playerNode == nil {
		return
	}
	s.playerNode.Offset = s.player.Position
	s.playerNode.RotationY = s.player.Yaw
}

func (s *Session) advanceDoor(delta time.Duration) {
	if s.door == nil || s.door.tween == nil {
		return
	}
	s.door.node.RotationY = s.door.tween.Advance(delta)
	if s.door.tween.Done() {
		s.door.tween = nil
	}
}

// checkZone fires the building entry transition on the tick the player crosses into the volume.
func (s *Session) checkZone() {
	inside := s.collide.Contains(s.player.Position)
	entered := inside && !s.inside
	s.inside = inside

	if !entered || s.phase != PhaseExplore {
		return
	}

	s.phase = PhaseFinalRiddle
	s.riddle = s.riddles.Get(CategoryFinal)
	s.rpsVisible = false
	s.say(render(msgEnterBuilding, s.riddle))
	s.follow.Frame(s.cfg.Interior.Position, s.cfg.Interior.Target)
}
