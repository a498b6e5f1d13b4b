package game

import (
	"math"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestTween(t *testing.T) {
	tests := map[string]struct {
		steps    []time.Duration
		expValue float64
		expDone  bool
	}{
		"not started": {
			expValue: 0,
		},
		"half way eases out": {
			steps:    []time.Duration{250 * time.Millisecond},
			expValue: 0.75,
		},
		"accumulates": {
			steps:    []time.Duration{100 * time.Millisecond, 150 * time.Millisecond},
			expValue: 0.75,
		},
		"finished": {
			steps:    []time.Duration{500 * time.Millisecond},
			expValue: 1,
			expDone:  true,
		},
		"overshoot clamps": {
			steps:    []time.Duration{400 * time.Millisecond, 400 * time.Millisecond},
			expValue: 1,
			expDone:  true,
		},
		"negative delta ignored": {
			steps:    []time.Duration{-time.Second},
			expValue: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tw := NewTween(0, 1, 500*time.Millisecond)
			for _, d := range tt.steps {
				tw.Advance(d)
			}
			if math.Abs(tw.Value()-tt.expValue) > 1e-9 {
				t.Errorf("value = %v, expected %v", tw.Value(), tt.expValue)
			}
			testutil.AssertEqual(t, "done", tw.Done(), tt.expDone)
		})
	}
}

func TestTween_ZeroDuration(t *testing.T) {
	tw := NewTween(1, 3, 0)
	testutil.AssertEqual(t, "value", tw.Value(), 3.0)
	testutil.AssertEqual(t, "done", tw.Done(), true)
}
