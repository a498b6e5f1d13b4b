package camera

import (
	"github.com/pixil98/go-adventure/internal/geom"
)

// Config tunes the follow camera.
type Config struct {
	Start  geom.Vec3 `json:"start"`
	Offset geom.Vec3 `json:"offset"`
	// Factor is the fraction of the remaining distance covered each tick.
	Factor float64 `json:"factor"`
}

func DefaultConfig() Config {
	return Config{
		Start:  geom.V(0, 10, 20),
		Offset: geom.V(0, 5, 5),
		Factor: 0.05,
	}
}

// Follow is a third-person camera that trails the player.
type Follow struct {
	cfg Config

	Position geom.Vec3
	Target   geom.Vec3
}

func NewFollow(cfg Config) *Follow {
	return &Follow{
		cfg:      cfg,
		Position: cfg.Start,
	}
}

// Desired returns where the camera wants to be for a player at pos facing yaw.
func (f *Follow) Desired(pos geom.Vec3, yaw float64) geom.Vec3 {
	return pos.Add(f.cfg.Offset.RotateY(yaw))
}

// Update eases the camera toward its desired position and aims it at the player.
func (f *Follow) Update(pos geom.Vec3, yaw float64) {
	f.Position = f.Position.Lerp(f.Desired(pos, yaw), f.cfg.Factor)
	f.Target = pos
}

// Frame places the camera at a fixed position looking at target.
func (f *Follow) Frame(position, target geom.Vec3) {
	f.Position = position
	f.Target = target
}
