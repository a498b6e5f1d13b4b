package monitor

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
)

// Row is one session as shown on the dashboard.
type Row struct {
	ID       string
	Snapshot game.Snapshot
	Message  string
	Seen     time.Time
}

// Board collects the latest state of every session seen on the bus. It is safe for concurrent use.
type Board struct {
	mu   sync.Mutex
	rows map[string]*Row
	now  func() time.Time
}

func NewBoard() *Board {
	return &Board{
		rows: map[string]*Row{},
		now:  time.Now,
	}
}

// Update records a message received on a session subject.
func (b *Board) Update(subject string, data []byte) error {
	id, kind, err := messaging.ParseSessionSubject(subject)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	row := b.rows[id]
	if row == nil {
		row = &Row{ID: id}
	}

	switch kind {
	case messaging.KindSnapshot:
		var snap game.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("decoding snapshot for %s: %w", id, err)
		}
		row.Snapshot = snap
	case messaging.KindMessage:
		row.Message = string(data)
	default:
		return nil
	}

	row.Seen = b.now()
	b.rows[id] = row
	return nil
}

// Prune forgets sessions not heard from within maxAge and returns how many were dropped.
func (b *Board) Prune(maxAge time.Duration) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().Add(-maxAge)
	n := 0
	for id, row := range b.rows {
		if row.Seen.Before(cutoff) {
			delete(b.rows, id)
			n++
		}
	}
	return n
}

// Rows returns a copy of every session ordered by id.
func (b *Board) Rows() []Row {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Row, 0, len(b.rows))
	for _, id := range slices.Sorted(maps.Keys(b.rows)) {
		out = append(out, *b.rows[id])
	}
	return out
}
