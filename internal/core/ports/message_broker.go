package ports

import (
	"context"
)

// MessageBroker publishes serialized domain events to the message bus.
type MessageBroker interface {
	// Publish sends a payload keyed by partition key. Messages with the
	// same key land on the same partition, preserving per-order ordering.
	// The event type travels as a message header.
	Publish(ctx context.Context, eventType, partitionKey string, payload []byte) error

	// Close releases broker resources.
	Close() error
}
