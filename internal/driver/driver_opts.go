package driver

import "time"

type FrameDriverOpt func(*FrameDriver)

// WithFrameLength sets the interval between ticks.
func WithFrameLength(frameLength time.Duration) FrameDriverOpt {
	return func(d *FrameDriver) {
		if frameLength > 0 {
			d.frameLength = frameLength
		}
	}
}
