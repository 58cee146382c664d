package kernel

import "time"

// DomainEvent represents a significant fact that happened inside the domain.
// Events are immutable snapshots named in the past tense (OrderCreated) and
// carry their own occurrence time, independent of when they are relayed to
// consumers.
type DomainEvent interface {
	// EventType returns the stable type tag used for outbox records and
	// broker routing.
	EventType() string

	// OccurredAt returns the time the event happened.
	OccurredAt() time.Time
}
