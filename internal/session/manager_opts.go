package session

import (
	"math/rand/v2"
	"time"
)

type ManagerOpt func(*Manager)

// WithFrameLength sets the delta each tick advances the games by. It should match the driver.
func WithFrameLength(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		if d > 0 {
			m.frameLength = d
		}
	}
}

// WithQueueSize sets how many actions a session buffers between ticks.
func WithQueueSize(n int) ManagerOpt {
	return func(m *Manager) {
		if n > 0 {
			m.queueSize = n
		}
	}
}

// WithMaxSessions caps how many sessions may be live at once. Zero means no limit.
func WithMaxSessions(n int) ManagerOpt {
	return func(m *Manager) {
		if n >= 0 {
			m.maxSessions = n
		}
	}
}

// WithRand sets the source of per-session randomness: stone scatter and the bulldog's hand.
func WithRand(newRand func() *rand.Rand) ManagerOpt {
	return func(m *Manager) {
		m.newRand = newRand
	}
}
