package motion

import (
	"time"

	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/input"
)

// ReferenceFrame is the frame length the per-tick speed is tuned for.
const ReferenceFrame = time.Second / 60

// Collider rejects proposed positions.
type Collider interface {
	Blocked(pos geom.Vec3, halfWidth, height float64) bool
}

// Unobstructed is a Collider for open ground.
type Unobstructed struct{}

func (Unobstructed) Blocked(geom.Vec3, float64, float64) bool {
	return false
}

// Config tunes the controller.
type Config struct {
	// MoveSpeed is the distance travelled per tick (or per ReferenceFrame when ScaleByDelta is set).
	MoveSpeed float64
	// Damping is the fraction of the remaining turn applied each tick.
	Damping float64
	// HalfWidth and Height describe the player's collision footprint.
	HalfWidth float64
	Height    float64
	// ScaleByDelta makes movement proportional to elapsed time instead of tick count.
	ScaleByDelta bool
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed: 0.1,
		Damping:   0.1,
		HalfWidth: 1.2,
		Height:    1.2 * 1.8,
	}
}

// Controller owns the player's position and yaw.
type Controller struct {
	cfg Config

	Position geom.Vec3
	Yaw      float64
}

func NewController(cfg Config, spawn geom.Vec3) *Controller {
	return &Controller{cfg: cfg, Position: spawn}
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Step integrates one tick of intent. It returns true if the position changed.
// A blocked proposal is discarded but the player still turns toward the desired yaw.
// col is required; pass Unobstructed when nothing can block the player.
func (c *Controller) Step(in input.Intent, delta time.Duration, col Collider) bool {
	if !in.Moving {
		return false
	}

	step := c.cfg.MoveSpeed
	if c.cfg.ScaleByDelta {
		step *= float64(delta) / float64(ReferenceFrame)
	}

	proposed := c.Position.Add(geom.V(in.DX, 0, in.DZ).Scale(step))
	moved := false
	if !col.Blocked(proposed, c.cfg.HalfWidth, c.cfg.Height) {
		moved = proposed != c.Position
		c.Position = proposed
	}

	turn := geom.NormalizeAngle(in.DesiredYaw - c.Yaw)
	c.Yaw += turn * c.cfg.Damping

	return moved
}
