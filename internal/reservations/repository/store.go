package repository

import (
	"context"

	"roomstay/pkg/model"
)

// BookingStore is the durable mirror of the active booking set. The
// in-memory ledger is authoritative; the store only needs to replay the
// active set at startup and absorb inserts/removals after each commit.
type BookingStore interface {
	LoadActive(ctx context.Context) ([]*model.Booking, error)
	Insert(ctx context.Context, booking *model.Booking) error
	Remove(ctx context.Context, id string) error
}

// NopStore backs the service when persistence is disabled.
type NopStore struct{}

func (NopStore) LoadActive(context.Context) ([]*model.Booking, error) { return nil, nil }

func (NopStore) Insert(context.Context, *model.Booking) error { return nil }

func (NopStore) Remove(context.Context, string) error { return nil }
