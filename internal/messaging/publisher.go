package messaging

import (
	"fmt"
	"strings"
)

// Per-session subject kinds.
const (
	KindSnapshot = "snapshot"
	KindMessage  = "message"
	KindStatus   = "status"
)

// AllSnapshots matches the snapshot subject of every session.
const AllSnapshots = "session.*." + KindSnapshot

func SessionSubject(id, kind string) string {
	return fmt.Sprintf("session.%s.%s", id, kind)
}

// ParseSessionSubject splits a session subject into its id and kind.
func ParseSessionSubject(subject string) (id, kind string, err error) {
	parts := strings.Split(subject, ".")
	if len(parts) != 3 || parts[0] != "session" || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("%q: %w", subject, ErrBadSubject)
	}
	return parts[1], parts[2], nil
}

// Bus is the raw publish side of the message bus.
type Bus interface {
	Publish(subject string, data []byte) error
}

// SessionPublisher publishes session updates to their per-session subjects.
type SessionPublisher struct {
	bus Bus
}

// NewSessionPublisher wraps a Bus for per-session delivery.
func NewSessionPublisher(bus Bus) *SessionPublisher {
	return &SessionPublisher{bus: bus}
}

func (p *SessionPublisher) PublishSnapshot(id string, data []byte) error {
	return p.bus.Publish(SessionSubject(id, KindSnapshot), data)
}

func (p *SessionPublisher) PublishMessage(id string, text string) error {
	return p.bus.Publish(SessionSubject(id, KindMessage), []byte(text))
}

func (p *SessionPublisher) PublishStatus(id string, data []byte) error {
	return p.bus.Publish(SessionSubject(id, KindStatus), data)
}
