package validator

import (
	"errors"
	"testing"

	"roomstay/pkg/logger"
	"roomstay/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		GuestName:    "Ada Lovelace",
		GuestEmail:   "ada@example.com",
		RoomTypeCode: "A",
		RoomNumber:   "101",
		StartTime:    "2026-03-01T10:00:00Z",
		EndTime:      "2026-03-02T10:00:00Z",
	}
}

func TestValidate_AcceptsCompleteRequest(t *testing.T) {
	v := NewBookingValidator(testLogger())

	if err := v.Validate(validRequest()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.BookingRequest)
		wantField string
	}{
		{"empty guest name", func(r *model.BookingRequest) { r.GuestName = "" }, "GuestName"},
		{"empty email", func(r *model.BookingRequest) { r.GuestEmail = "" }, "GuestEmail"},
		{"empty room type", func(r *model.BookingRequest) { r.RoomTypeCode = "" }, "RoomTypeCode"},
		{"empty room number", func(r *model.BookingRequest) { r.RoomNumber = "" }, "RoomNumber"},
		{"empty start time", func(r *model.BookingRequest) { r.StartTime = "" }, "StartTime"},
		{"empty end time", func(r *model.BookingRequest) { r.EndTime = "" }, "EndTime"},
		{"malformed email", func(r *model.BookingRequest) { r.GuestEmail = "not-an-email" }, "GuestEmail"},
	}

	v := NewBookingValidator(testLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.Validate(req)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, field := range validationErrs.Fields() {
				if field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %s among %v", tt.wantField, validationErrs.Fields())
			}
		})
	}
}

func TestValidate_IgnoresIntervalOrder(t *testing.T) {
	v := NewBookingValidator(testLogger())

	// Reversed interval passes field validation; ordering is checked
	// later in the create flow.
	req := validRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime

	if err := v.Validate(req); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
