package model

import "time"

// Booking is an active reservation of one physical room over a
// half-open interval [StartTime, EndTime). Owned by the ledger; the
// price is fixed at creation and never recomputed.
type Booking struct {
	ID           string    `json:"id" bson:"_id"`
	GuestName    string    `json:"guest_name" bson:"guest_name"`
	GuestEmail   string    `json:"guest_email" bson:"guest_email"`
	RoomTypeCode string    `json:"room_type" bson:"room_type"`
	RoomNumber   string    `json:"room_number" bson:"room_number"`
	StartTime    time.Time `json:"start_time" bson:"start_time"`
	EndTime      time.Time `json:"end_time" bson:"end_time"`
	PriceCents   int64     `json:"price_cents" bson:"price_cents"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// BookingRequest carries the raw submission. Times stay strings until
// the ledger parses them, so an unparseable timestamp surfaces as an
// interval error rather than a decode failure.
type BookingRequest struct {
	GuestName    string `json:"guest_name" validate:"required,max=100"`
	GuestEmail   string `json:"guest_email" validate:"required,email"`
	RoomTypeCode string `json:"room_type" validate:"required"`
	RoomNumber   string `json:"room_number" validate:"required,max=20"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
}

// TypeAvailability is a catalog row joined with its remaining count.
type TypeAvailability struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	HourlyPriceCents int64  `json:"hourly_price_cents"`
	TotalRooms       int    `json:"total_rooms"`
	Remaining        int    `json:"remaining"`
}
