package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomstay/internal/catalog"
	"roomstay/internal/pricing"
	"roomstay/internal/refund"
	reserrors "roomstay/internal/reservations/errors"
	"roomstay/internal/reservations/repository"
	"roomstay/internal/reservations/validator"
	"roomstay/pkg/config"
	apperrors "roomstay/pkg/errors"
	"roomstay/pkg/events"
	"roomstay/pkg/model"
)

// Accepted request timestamp formats. The second covers browser
// datetime-local values, which carry no zone and no seconds.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type ReservationService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, id string, at time.Time) (int64, error)
	List(ctx context.Context) []*model.Booking
	Remaining(code string) (int, error)
	Availability() []model.TypeAvailability
	Quote(code, start, end string) (int64, error)
}

// reservationService is the booking ledger. All mutable state lives
// behind one mutex so a create's overlap check, inventory check, and
// insert commit as a single step; cancellations serialize the same way.
type reservationService struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	store     repository.BookingStore
	validator *validator.BookingValidator
	publisher events.Publisher

	mu        sync.Mutex
	bookings  map[string]*model.Booking
	order     []string            // booking IDs in insertion order
	byRoom    map[string][]string // room number -> booking IDs, global across types
	remaining map[string]int
}

func NewReservationService(
	ctx context.Context,
	cfg *config.Config,
	cat *catalog.Catalog,
	store repository.BookingStore,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
) (ReservationService, error) {
	s := &reservationService{
		cfg:       cfg,
		catalog:   cat,
		store:     store,
		validator: bookingValidator,
		publisher: publisher,
		bookings:  make(map[string]*model.Booking),
		byRoom:    make(map[string][]string),
		remaining: make(map[string]int),
	}

	for _, rt := range cat.Types() {
		s.remaining[rt.Code] = rt.TotalRooms
	}

	loaded, err := store.LoadActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed ledger from store: %w", err)
	}
	for _, booking := range loaded {
		if err := s.admit(booking); err != nil {
			return nil, fmt.Errorf("seed ledger from store: %w", err)
		}
	}

	if len(loaded) > 0 {
		cfg.Log.Info("Ledger seeded from store", "bookings", len(loaded))
	}

	return s, nil
}

// admit replays a stored booking into the ledger, enforcing the same
// invariants a fresh create would. A store that violates them is
// corrupt and the process must not start from it.
func (s *reservationService) admit(booking *model.Booking) error {
	rt, ok := s.catalog.TypeByCode(booking.RoomTypeCode)
	if !ok {
		return fmt.Errorf("booking %s references unknown room type %q", booking.ID, booking.RoomTypeCode)
	}
	if s.remaining[rt.Code] == 0 {
		return fmt.Errorf("bookings of type %q exceed its %d-room inventory", rt.Code, rt.TotalRooms)
	}
	if _, exists := s.bookings[booking.ID]; exists {
		return fmt.Errorf("duplicate booking id %s", booking.ID)
	}
	if s.overlapsLocked(booking.RoomNumber, booking.StartTime, booking.EndTime) {
		return fmt.Errorf("booking %s overlaps another booking of room %q", booking.ID, booking.RoomNumber)
	}

	s.insertLocked(booking)
	return nil
}

func (s *reservationService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.MissingField(map[string]any{"fields": validationErrs.Fields()})
		}
		return nil, apperrors.Internal("Failed to validate booking request", err)
	}

	rt, ok := s.catalog.TypeByCode(req.RoomTypeCode)
	if !ok {
		return nil, apperrors.UnknownRoomType(req.RoomTypeCode)
	}

	s.mu.Lock()

	if s.remaining[rt.Code] == 0 {
		s.mu.Unlock()
		return nil, apperrors.NoInventory(rt.Code)
	}

	start, end, appErr := parseInterval(req.StartTime, req.EndTime)
	if appErr != nil {
		s.mu.Unlock()
		return nil, appErr
	}

	if s.overlapsLocked(req.RoomNumber, start, end) {
		s.mu.Unlock()
		return nil, apperrors.OverlapConflict(req.RoomNumber)
	}

	priceCents, err := pricing.Quote(rt, start, end)
	if err != nil {
		s.mu.Unlock()
		return nil, apperrors.InvalidInterval("End time must be after start time")
	}

	booking := &model.Booking{
		ID:           uuid.NewString(),
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		RoomTypeCode: rt.Code,
		RoomNumber:   req.RoomNumber,
		StartTime:    start,
		EndTime:      end,
		PriceCents:   priceCents,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	s.insertLocked(booking)
	s.mu.Unlock()

	// Boundary effects after the commit: the mirror and the event
	// stream trail the ledger, they do not gate it.
	if err := s.store.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to mirror booking to store", "id", booking.ID, "error", err)
	}
	if err := s.publisher.ReservationCreated(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to publish created event", "id", booking.ID, "error", err)
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"room_type", booking.RoomTypeCode,
		"room_number", booking.RoomNumber,
		"start_time", booking.StartTime,
		"price_cents", booking.PriceCents,
	)

	return booking, nil
}

func (s *reservationService) Cancel(ctx context.Context, id string, at time.Time) (int64, error) {
	if id == "" {
		return 0, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	s.mu.Lock()

	booking, ok := s.bookings[id]
	if !ok {
		s.mu.Unlock()
		return 0, apperrors.BookingNotFound(id)
	}

	refundCents := refund.Amount(booking.PriceCents, booking.StartTime, at)

	rt, _ := s.catalog.TypeByCode(booking.RoomTypeCode)
	if s.remaining[rt.Code] < rt.TotalRooms {
		s.remaining[rt.Code]++
	}
	s.removeLocked(booking)
	s.mu.Unlock()

	if err := s.store.Remove(ctx, id); err != nil && !errors.Is(err, reserrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to remove booking from store", "id", id, "error", err)
	}
	if err := s.publisher.ReservationCancelled(ctx, booking, refundCents); err != nil {
		s.cfg.Log.Error("Failed to publish cancelled event", "id", id, "error", err)
	}

	s.cfg.Log.Info("Booking cancelled",
		"id", id,
		"room_type", booking.RoomTypeCode,
		"refund_cents", refundCents,
	)

	return refundCents, nil
}

// List returns the active bookings in insertion order. Filtering is a
// caller concern; this is a pass-through of the full set.
func (s *reservationService) List(_ context.Context) []*model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*model.Booking, 0, len(s.order))
	for _, id := range s.order {
		b := *s.bookings[id]
		bookings = append(bookings, &b)
	}
	return bookings
}

func (s *reservationService) Remaining(code string) (int, error) {
	if _, ok := s.catalog.TypeByCode(code); !ok {
		return 0, apperrors.UnknownRoomType(code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining[code], nil
}

func (s *reservationService) Availability() []model.TypeAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := s.catalog.Types()
	availability := make([]model.TypeAvailability, 0, len(types))
	for _, rt := range types {
		availability = append(availability, model.TypeAvailability{
			Code:             rt.Code,
			Name:             rt.Name,
			HourlyPriceCents: rt.HourlyPriceCents,
			TotalRooms:       rt.TotalRooms,
			Remaining:        s.remaining[rt.Code],
		})
	}
	return availability
}

// Quote prices a candidate stay without touching the ledger. Create
// runs the same computation at submit time; that result is the one
// stored on the booking.
func (s *reservationService) Quote(code, start, end string) (int64, error) {
	rt, ok := s.catalog.TypeByCode(code)
	if !ok {
		return 0, apperrors.UnknownRoomType(code)
	}

	startTime, endTime, appErr := parseInterval(start, end)
	if appErr != nil {
		return 0, appErr
	}

	priceCents, err := pricing.Quote(rt, startTime, endTime)
	if err != nil {
		return 0, apperrors.InvalidInterval("End time must be after start time")
	}

	return priceCents, nil
}

// insertLocked commits a booking into every index. Caller holds s.mu.
func (s *reservationService) insertLocked(booking *model.Booking) {
	s.remaining[booking.RoomTypeCode]--
	s.bookings[booking.ID] = booking
	s.order = append(s.order, booking.ID)
	s.byRoom[booking.RoomNumber] = append(s.byRoom[booking.RoomNumber], booking.ID)
}

// removeLocked drops a booking from every index except the remaining
// counter, which the caller adjusts under its release cap.
func (s *reservationService) removeLocked(booking *model.Booking) {
	delete(s.bookings, booking.ID)

	for i, id := range s.order {
		if id == booking.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	ids := s.byRoom[booking.RoomNumber]
	for i, id := range ids {
		if id == booking.ID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.byRoom, booking.RoomNumber)
	} else {
		s.byRoom[booking.RoomNumber] = ids
	}
}

// overlapsLocked reports whether [start, end) intersects any active
// booking of the same room number. Room numbers identify physical
// rooms globally, so the index ignores room types. Caller holds s.mu.
func (s *reservationService) overlapsLocked(roomNumber string, start, end time.Time) bool {
	for _, id := range s.byRoom[roomNumber] {
		booking := s.bookings[id]
		if start.Before(booking.EndTime) && booking.StartTime.Before(end) {
			return true
		}
	}
	return false
}

func parseInterval(start, end string) (time.Time, time.Time, *apperrors.AppError) {
	startTime, err := parseTime(start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInterval("Start time is not a valid timestamp")
	}
	endTime, err := parseTime(end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInterval("End time is not a valid timestamp")
	}
	return startTime, endTime, nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", reserrors.ErrUnparseableTime, value)
}
