package game

import "time"

// Tween interpolates a single value over a fixed duration with quadratic ease-out.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Elapsed  time.Duration
}

func NewTween(from, to float64, d time.Duration) *Tween {
	return &Tween{From: from, To: to, Duration: d}
}

// Advance moves the tween forward by delta and returns the new value.
func (t *Tween) Advance(delta time.Duration) float64 {
	if delta > 0 {
		t.Elapsed = min(t.Elapsed+delta, t.Duration)
	}
	return t.Value()
}

func (t *Tween) Value() float64 {
	if t.Duration <= 0 {
		return t.To
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	return t.From + (t.To-t.From)*EaseOutQuad(p)
}

func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}

func EaseOutQuad(p float64) float64 {
	return p * (2 - p)
}
