package producer

import (
	"context"

	"hris-payroll/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher writes outbox rows to their topics. The writer is shared and
// safe for concurrent use; topics are taken per-message from the row.
type Publisher struct {
	writer *kafkago.Writer
}

func NewPublisher(writer *kafkago.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
