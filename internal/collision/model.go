package collision

import (
	"github.com/pixil98/go-adventure/internal/geom"
)

// Reason explains a collision verdict so presentation can narrate it.
type Reason string

const (
	ReasonClear      Reason = "clear"
	ReasonDoorOpen   Reason = "door_open"
	ReasonDoorLocked Reason = "door_locked"
	ReasonWall       Reason = "wall"
)

// Result is the outcome of testing a proposed position.
type Result struct {
	Blocked bool
	Reason  Reason
}

// DoorGate is the opening in the building footprint. Pass-through depends only on Unlocked.
type DoorGate struct {
	MinX     float64 `json:"min_x"`
	MaxX     float64 `json:"max_x"`
	MinZ     float64 `json:"min_z"`
	MaxZ     float64 `json:"max_z"`
	MaxY     float64 `json:"max_y"`
	Unlocked bool    `json:"-"`
}

// Admits reports whether p lies strictly inside the gate rectangle with feet below the ceiling.
func (d DoorGate) Admits(p geom.Vec3) bool {
	return p.X > d.MinX && p.X < d.MaxX &&
		p.Z > d.MinZ && p.Z < d.MaxZ &&
		p.Y < d.MaxY
}

// Model tests player movement against a single building volume with a gated door.
type Model struct {
	building *geom.Box
	door     DoorGate
}

func NewModel(door DoorGate) *Model {
	return &Model{door: door}
}

// SetBuilding fixes the building volume. Only the first call has an effect.
func (m *Model) SetBuilding(b geom.Box) bool {
	if m.building != nil || b.IsEmpty() {
		return false
	}
	m.building = &b
	return true
}

// Building returns the building volume, if it has been computed.
func (m *Model) Building() (geom.Box, bool) {
	if m.building == nil {
		return geom.Box{}, false
	}
	return *m.building, true
}

// Door returns a copy of the door gate.
func (m *Model) Door() DoorGate {
	return m.door
}

// Unlock opens the door gate. The gate never locks again.
func (m *Model) Unlock() {
	m.door.Unlocked = true
}

// Check tests the player's inflated footprint at pos against the building volume.
func (m *Model) Check(pos geom.Vec3, halfWidth, height float64) Result {
	if m.building == nil {
		return Result{Reason: ReasonClear}
	}
	box := *m.building

	overlapX := pos.X+halfWidth > box.Min.X && pos.X-halfWidth < box.Max.X
	overlapZ := pos.Z+halfWidth > box.Min.Z && pos.Z-halfWidth < box.Max.Z
	overlapY := pos.Y+height > box.Min.Y && pos.Y < box.Max.Y
	if !overlapX || !overlapY || !overlapZ {
		return Result{Reason: ReasonClear}
	}

	if m.door.Admits(pos) {
		if m.door.Unlocked {
			return Result{Reason: ReasonDoorOpen}
		}
		return Result{Blocked: true, Reason: ReasonDoorLocked}
	}

	return Result{Blocked: true, Reason: ReasonWall}
}

// Blocked reports whether moving to pos is rejected.
func (m *Model) Blocked(pos geom.Vec3, halfWidth, height float64) bool {
	return m.Check(pos, halfWidth, height).Blocked
}

// Contains reports whether p is inside the building volume. Always false before the volume is set.
func (m *Model) Contains(p geom.Vec3) bool {
	if m.building == nil {
		return false
	}
	return m.building.ContainsPoint(p)
}
