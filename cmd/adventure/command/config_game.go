package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/collision"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
)

// GameConfig overrides the stock game rules. Every field is optional.
type GameConfig struct {
	Economy          EconomyConfig       `json:"economy"`
	Movement         MovementConfig      `json:"movement"`
	Camera           *camera.Config      `json:"camera,omitempty"`
	Lens             *camera.Lens        `json:"lens,omitempty"`
	Viewport         *camera.Viewport    `json:"viewport,omitempty"`
	Door             *collision.DoorGate `json:"door,omitempty"`
	Manifest         assets.Manifest     `json:"manifest,omitempty"`
	DoorOpenDuration string              `json:"door_open_duration,omitempty"`
}

type EconomyConfig struct {
	StartingCoins *int `json:"starting_coins,omitempty"`
	KeyPrice      *int `json:"key_price,omitempty"`
	RPSReward     *int `json:"rps_reward,omitempty"`
	BulldogReward *int `json:"bulldog_reward,omitempty"`
	RiddleKeys    *int `json:"riddle_keys,omitempty"`
	StoneCoins    *int `json:"stone_coins,omitempty"`
}

type MovementConfig struct {
	MoveSpeed    *float64 `json:"move_speed,omitempty"`
	Damping      *float64 `json:"damping,omitempty"`
	HalfWidth    *float64 `json:"half_width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	ScaleByDelta *bool    `json:"scale_by_delta,omitempty"`
}

func (c *GameConfig) validate() error {
	_, err := c.BuildGameConfig()
	return err
}

// BuildGameConfig applies the overrides to the defaults and checks the result.
func (c *GameConfig) BuildGameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	el := errors.NewErrorList()

	setInt(&cfg.Economy.StartingCoins, c.Economy.StartingCoins)
	setInt(&cfg.Economy.KeyPrice, c.Economy.KeyPrice)
	setInt(&cfg.Economy.RPSReward, c.Economy.RPSReward)
	setInt(&cfg.Economy.BulldogReward, c.Economy.BulldogReward)
	setInt(&cfg.Economy.RiddleKeys, c.Economy.RiddleKeys)
	setInt(&cfg.Economy.StoneCoins, c.Economy.StoneCoins)

	if c.Movement.MoveSpeed != nil {
		cfg.Motion.MoveSpeed = *c.Movement.MoveSpeed
	}
	if c.Movement.Damping != nil {
		cfg.Motion.Damping = *c.Movement.Damping
	}
	if c.Movement.HalfWidth != nil {
		cfg.Motion.HalfWidth = *c.Movement.HalfWidth
	}
	if c.Movement.Height != nil {
		cfg.Motion.Height = *c.Movement.Height
	}
	if c.Movement.ScaleByDelta != nil {
		cfg.Motion.ScaleByDelta = *c.Movement.ScaleByDelta
	}

	if c.Camera != nil {
		cfg.Camera = *c.Camera
	}
	if c.Lens != nil {
		cfg.Lens = *c.Lens
	}
	if c.Viewport != nil {
		cfg.Viewport = *c.Viewport
	}
	if c.Door != nil {
		cfg.Door = *c.Door
	}
	if c.Manifest != nil {
		cfg.Manifest = c.Manifest
	}
	if c.DoorOpenDuration != "" {
		d, err := time.ParseDuration(c.DoorOpenDuration)
		if err != nil {
			el.Add(fmt.Errorf("parsing door_open_duration: %w", err))
		} else {
			cfg.DoorOpenDuration = d
		}
	}

	e := cfg.Economy
	if e.StartingCoins < 0 || e.RPSReward < 0 || e.BulldogReward < 0 || e.RiddleKeys < 0 || e.StoneCoins < 0 {
		el.Add(fmt.Errorf("economy values must not be negative"))
	}
	if e.KeyPrice <= 0 {
		el.Add(fmt.Errorf("economy.key_price must be positive"))
	}

	m := cfg.Motion
	if m.MoveSpeed <= 0 {
		el.Add(fmt.Errorf("movement.move_speed must be positive"))
	}
	if m.Damping <= 0 || m.Damping > 1 {
		el.Add(fmt.Errorf("movement.damping must be in (0, 1]"))
	}
	if m.HalfWidth <= 0 || m.Height <= 0 {
		el.Add(fmt.Errorf("movement.half_width and movement.height must be positive"))
	}

	if cfg.Camera.Factor <= 0 || cfg.Camera.Factor > 1 {
		el.Add(fmt.Errorf("camera.factor must be in (0, 1]"))
	}
	if cfg.Lens.FovY <= 0 || cfg.Lens.FovY >= 180 {
		el.Add(fmt.Errorf("lens.fov_y must be between 0 and 180 degrees"))
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		el.Add(fmt.Errorf("viewport width and height must be positive"))
	}
	if cfg.Door.MinX >= cfg.Door.MaxX || cfg.Door.MinZ >= cfg.Door.MaxZ || cfg.Door.MaxY <= 0 {
		el.Add(fmt.Errorf("door must have min_x < max_x, min_z < max_z and a positive max_y"))
	}
	if cfg.DoorOpenDuration < 0 {
		el.Add(fmt.Errorf("door_open_duration must not be negative"))
	}
	if err := cfg.Manifest.Validate(); err != nil {
		el.Add(fmt.Errorf("manifest: %w", err))
	}

	if err := el.Err(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
