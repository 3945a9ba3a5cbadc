package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"roomstay/pkg/model"
)

const (
	headerEventID   = "event-id"
	headerEventType = "event-type"
	headerSource    = "source"
)

// KafkaPublisher writes lifecycle events to a single topic, keyed by
// booking ID so events for one booking stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
	source string
}

func NewKafkaPublisher(brokers []string, topic, source string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaPublisher{writer: writer, source: source}, nil
}

func (p *KafkaPublisher) ReservationCreated(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, Envelope{
		EventID:    uuid.NewString(),
		EventType:  TypeReservationCreated,
		OccurredAt: time.Now().UTC(),
		Booking:    booking,
	})
}

func (p *KafkaPublisher) ReservationCancelled(ctx context.Context, booking *model.Booking, refundCents int64) error {
	return p.publish(ctx, Envelope{
		EventID:     uuid.NewString(),
		EventType:   TypeReservationCancelled,
		OccurredAt:  time.Now().UTC(),
		Booking:     booking,
		RefundCents: &refundCents,
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, envelope Envelope) error {
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", envelope.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(envelope.Booking.ID),
		Value: value,
		Time:  envelope.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(envelope.EventID)},
			{Key: headerEventType, Value: []byte(envelope.EventType)},
			{Key: headerSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", envelope.EventType, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
