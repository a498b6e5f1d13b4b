package driver

import (
	"context"
	"time"
)

const (
	DefaultFrameLength = time.Second / 60
)

// Manager is advanced once per frame.
type Manager interface {
	Tick(context.Context) error
}

// FrameDriver ticks its managers at a fixed interval on a single goroutine.
type FrameDriver struct {
	frameLength time.Duration
	managers    []Manager
}

func NewFrameDriver(managers []Manager, opts ...FrameDriverOpt) *FrameDriver {
	d := &FrameDriver{
		frameLength: DefaultFrameLength,
		managers:    managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// FrameLength is the interval between ticks.
func (d *FrameDriver) FrameLength() time.Duration {
	return d.frameLength
}

func (d *FrameDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.frameLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *FrameDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
