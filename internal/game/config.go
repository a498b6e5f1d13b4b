package game

import (
	"math"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/collision"
	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-adventure/internal/input"
	"github.com/pixil98/go-adventure/internal/motion"
)

// Economy sets prices and rewards.
type Economy struct {
	StartingCoins int
	KeyPrice      int
	RPSReward     int
	BulldogReward int
	RiddleKeys    int
	StoneCoins    int
}

// Framing is a fixed camera placement.
type Framing struct {
	Position geom.Vec3
	Target   geom.Vec3
}

type Config struct {
	Economy  Economy
	Motion   motion.Config
	Camera   camera.Config
	Lens     camera.Lens
	Viewport camera.Viewport
	Door     collision.DoorGate
	Bindings map[string]input.Direction
	Manifest assets.Manifest

	// Interior is where the camera goes when the player enters the building.
	Interior Framing

	DoorOpenAngle    float64
	DoorOpenDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		Economy: Economy{
			StartingCoins: 5,
			KeyPrice:      9,
			RPSReward:     9,
			BulldogReward: 2,
			RiddleKeys:    1,
			StoneCoins:    1,
		},
		Motion:   motion.DefaultConfig(),
		Camera:   camera.DefaultConfig(),
		Lens:     camera.DefaultLens(),
		Viewport: camera.Viewport{Width: 1280, Height: 720},
		Door: collision.DoorGate{
			MinX: 11.0,
			MaxX: 12.0,
			MinZ: 9.8,
			MaxZ: 10.2,
			MaxY: 2.5,
		},
		Bindings: input.DefaultBindings(),
		Manifest: assets.DefaultManifest(),
		Interior: Framing{
			Position: geom.V(10, 3, 12),
			Target:   geom.V(10, 1, 7),
		},
		DoorOpenAngle:    math.Pi / 2,
		DoorOpenDuration: 500 * time.Millisecond,
	}
}
