package command

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-errors"
)

const defaultRefresh = 250 * time.Millisecond

type Config struct {
	NatsURL         string `json:"nats_url"`
	RefreshInterval string `json:"refresh_interval"`
	// ForgetAfter drops sessions that have been quiet this long. Empty keeps them forever.
	ForgetAfter string `json:"forget_after"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.refresh(); err != nil {
		el.Add(err)
	}
	if _, err := c.forgetAfter(); err != nil {
		el.Add(err)
	}

	return el.Err()
}

func (c *Config) natsURL() string {
	if c.NatsURL == "" {
		return nats.DefaultURL
	}
	return c.NatsURL
}

func (c *Config) refresh() (time.Duration, error) {
	if c.RefreshInterval == "" {
		return defaultRefresh, nil
	}
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing refresh_interval: %w", err)
	}
	if d < 10*time.Millisecond {
		return 0, fmt.Errorf("refresh_interval must be at least 10ms")
	}
	return d, nil
}

func (c *Config) forgetAfter() (time.Duration, error) {
	if c.ForgetAfter == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ForgetAfter)
	if err != nil {
		return 0, fmt.Errorf("parsing forget_after: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("forget_after must be positive")
	}
	return d, nil
}
