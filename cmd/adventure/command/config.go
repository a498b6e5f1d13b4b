package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-errors"
)

const (
	minFrameInterval = time.Millisecond
	maxFrameInterval = time.Second
)

type Config struct {
	FrameInterval string           `json:"frame_interval"`
	Listeners     []ListenerConfig `json:"listeners"`
	Storage       StorageConfig    `json:"storage"`
	Nats          NatsConfig       `json:"nats"`
	Session       SessionConfig    `json:"session"`
	Game          GameConfig       `json:"game"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.frameLength(); err != nil {
		el.Add(err)
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Session.validate())
	el.Add(c.Game.validate())

	return el.Err()
}

// frameLength parses frame_interval, defaulting to 60 frames per second.
func (c *Config) frameLength() (time.Duration, error) {
	if c.FrameInterval == "" {
		return driver.DefaultFrameLength, nil
	}

	d, err := time.ParseDuration(c.FrameInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing frame_interval: %w", err)
	}
	if d < minFrameInterval || d > maxFrameInterval {
		return 0, fmt.Errorf("frame_interval must be between %s and %s", minFrameInterval, maxFrameInterval)
	}
	return d, nil
}

type SessionConfig struct {
	QueueSize   int `json:"queue_size"`
	MaxSessions int `json:"max_sessions"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.QueueSize < 0 {
		el.Add(fmt.Errorf("queue_size must not be negative"))
	}
	if c.MaxSessions < 0 {
		el.Add(fmt.Errorf("max_sessions must not be negative"))
	}

	return el.Err()
}

func (c *SessionConfig) opts(frameLength time.Duration) []session.ManagerOpt {
	opts := []session.ManagerOpt{session.WithFrameLength(frameLength)}
	if c.QueueSize > 0 {
		opts = append(opts, session.WithQueueSize(c.QueueSize))
	}
	if c.MaxSessions > 0 {
		opts = append(opts, session.WithMaxSessions(c.MaxSessions))
	}
	return opts
}
