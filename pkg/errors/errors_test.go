package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"unknown room type", UnknownRoomType("Z"), CodeUnknownRoomType, http.StatusNotFound},
		{"no inventory", NoInventory("A"), CodeNoInventory, http.StatusConflict},
		{"overlap conflict", OverlapConflict("101"), CodeOverlapConflict, http.StatusConflict},
		{"invalid interval", InvalidInterval("end before start"), CodeInvalidInterval, http.StatusUnprocessableEntity},
		{"booking not found", BookingNotFound("abc"), CodeBookingNotFound, http.StatusNotFound},
		{"missing field", MissingField(nil), CodeMissingField, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Code: CodeBookingNotFound, Message: "Booking not found"}
	if plain.Error() != "BOOKING_NOT_FOUND: Booking not found" {
		t.Errorf("unexpected error string: %s", plain.Error())
	}

	cause := errors.New("write failed")
	wrapped := Internal("store unavailable", cause)
	if wrapped.Error() != "INTERNAL_ERROR: store unavailable (caused by: write failed)" {
		t.Errorf("unexpected error string: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("expected wrapped error to unwrap to its cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NoInventory("B")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected AsAppError to return the same *AppError")
	}

	plain := errors.New("boom")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, got.Code)
	}
	if got.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", got.StatusCode())
	}
}

func TestWithDetails(t *testing.T) {
	err := InvalidInput("bad limit").WithDetails(map[string]any{"limit": "abc"})
	if err.Details["limit"] != "abc" {
		t.Error("expected details to carry the limit value")
	}
}
