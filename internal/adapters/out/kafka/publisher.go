// Package kafka provides the Kafka-backed MessageBroker adapter. Outbox
// records are published keyed by order number, so all events of one order
// land on the same partition and consumers observe them in order.
package kafka

import (
	"context"

	"orders/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher publishes domain event payloads to a Kafka topic.
type Publisher struct {
	writer *kafkago.Writer
}

// NewPublisher creates a Publisher writing to the given brokers and topic.
// RequireAll acks keep the at-least-once guarantee: a record is only marked
// published after every in-sync replica has the message.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireAll,
		},
	}, nil
}

// Publish sends the payload keyed by partition key, with the event type as a
// message header.
func (p *Publisher) Publish(ctx context.Context, eventType, partitionKey string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(partitionKey),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
