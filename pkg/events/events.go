package events

import (
	"context"
	"time"

	"roomstay/pkg/model"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
)

// Envelope is the wire shape of a reservation lifecycle event.
type Envelope struct {
	EventID     string         `json:"event_id"`
	EventType   string         `json:"event_type"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Booking     *model.Booking `json:"booking"`
	RefundCents *int64         `json:"refund_cents,omitempty"`
}

// Publisher emits reservation lifecycle events. Publishing is a
// boundary effect after the ledger commits; failures are reported to
// the caller for logging, never rolled back into the ledger.
type Publisher interface {
	ReservationCreated(ctx context.Context, booking *model.Booking) error
	ReservationCancelled(ctx context.Context, booking *model.Booking, refundCents int64) error
	Close() error
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) ReservationCreated(context.Context, *model.Booking) error { return nil }

func (NopPublisher) ReservationCancelled(context.Context, *model.Booking, int64) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
