package input

import (
	"math"
)

// Direction is a logical movement direction.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Facing angles for each single direction. Diagonals use the mean of their two components.
const (
	YawForward = math.Pi
	YawBack    = 0.0
	YawLeft    = math.Pi / 2
	YawRight   = -math.Pi / 2
)

// DefaultBindings maps browser key codes to directions.
func DefaultBindings() map[string]Direction {
	return map[string]Direction{
		"KeyW": Forward,
		"KeyS": Back,
		"KeyA": Left,
		"KeyD": Right,
	}
}

// Intent is the movement requested by the currently held keys.
type Intent struct {
	DX         float64
	DZ         float64
	DesiredYaw float64
	Moving     bool
}

// Sampler tracks which movement keys are held.
type Sampler struct {
	bindings map[string]Direction
	held     [4]bool
}

func NewSampler(bindings map[string]Direction) *Sampler {
	if len(bindings) == 0 {
		bindings = DefaultBindings()
	}
	return &Sampler{bindings: bindings}
}

// KeyDown records a key press. It returns false if the code is not bound.
func (s *Sampler) KeyDown(code string) bool {
	return s.set(code, true)
}

// KeyUp records a key release. It returns false if the code is not bound.
func (s *Sampler) KeyUp(code string) bool {
	return s.set(code, false)
}

func (s *Sampler) set(code string, down bool) bool {
	d, ok := s.bindings[code]
	if !ok {
		return false
	}
	s.held[d] = down
	return true
}

// Held reports whether a direction is currently held.
func (s *Sampler) Held(d Direction) bool {
	return s.held[d]
}

// Reset releases every key.
func (s *Sampler) Reset() {
	s.held = [4]bool{}
}

// Sample converts the held keys to an intent. Later keys in W, S, A, D order override the
// facing of earlier ones; a held diagonal pair overrides any single key.
func (s *Sampler) Sample(currentYaw float64) Intent {
	in := Intent{DesiredYaw: currentYaw}
	fwd, back, left, right := s.held[Forward], s.held[Back], s.held[Left], s.held[Right]

	if fwd {
		in.DZ -= 1
		in.DesiredYaw = YawForward
		in.Moving = true
	}
	if back {
		in.DZ += 1
		in.DesiredYaw = YawBack
		in.Moving = true
	}
	if left {
		in.DX -= 1
		in.DesiredYaw = YawLeft
		in.Moving = true
	}
	if right {
		in.DX += 1
		in.DesiredYaw = YawRight
		in.Moving = true
	}

	if fwd && left {
		in.DesiredYaw = (YawForward + YawLeft) / 2
	}
	if fwd && right {
		in.DesiredYaw = (YawForward + YawRight) / 2
	}
	if back && left {
		in.DesiredYaw = (YawBack + YawLeft) / 2
	}
	if back && right {
		in.DesiredYaw = (YawBack + YawRight) / 2
	}

	return in
}
