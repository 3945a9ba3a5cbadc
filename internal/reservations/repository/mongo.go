package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reserrors "roomstay/internal/reservations/errors"
	"roomstay/pkg/config"
	"roomstay/pkg/model"
)

const (
	CollectionName = "Reservations"
)

type mongoBookingStore struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingStore(cfg *config.Config) BookingStore {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingStore{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a store call without extending a caller deadline.
func (s *mongoBookingStore) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (s *mongoBookingStore) LoadActive(ctx context.Context) ([]*model.Booking, error) {
	ctx, cancel := s.withTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	// created_at order rebuilds the ledger's insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode active bookings: %w", err)
	}

	return bookings, nil
}

func (s *mongoBookingStore) Insert(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := s.withTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("insert booking %s: %w", booking.ID, err)
	}

	return nil
}

func (s *mongoBookingStore) Remove(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("remove booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return reserrors.ErrNotFound
	}

	return nil
}
