package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeMissingField    = "MISSING_FIELD"
	CodeUnknownRoomType = "UNKNOWN_ROOM_TYPE"
	CodeNoInventory     = "NO_INVENTORY"
	CodeOverlapConflict = "OVERLAP_CONFLICT"
	CodeInvalidInterval = "INVALID_INTERVAL"
	CodeBookingNotFound = "BOOKING_NOT_FOUND"

	CodeInvalidInput = "INVALID_INPUT"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
	CodeTimeout      = "TIMEOUT"
)

// AppError is the typed failure surfaced to callers. Every validation
// failure in the reservation flow is one of these; none is fatal to the
// process and none is retried by the service itself.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func MissingField(details map[string]any) *AppError {
	return &AppError{
		Code:       CodeMissingField,
		Message:    "Booking fields are missing or invalid",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func UnknownRoomType(code string) *AppError {
	return &AppError{
		Code:       CodeUnknownRoomType,
		Message:    fmt.Sprintf("Room type %q is not in the catalog", code),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"room_type": code},
	}
}

func NoInventory(code string) *AppError {
	return &AppError{
		Code:       CodeNoInventory,
		Message:    fmt.Sprintf("No rooms of type %q left", code),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"room_type": code},
	}
}

func OverlapConflict(roomNumber string) *AppError {
	return &AppError{
		Code:       CodeOverlapConflict,
		Message:    fmt.Sprintf("Room %q is already booked for an overlapping interval", roomNumber),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"room_number": roomNumber},
	}
}

func InvalidInterval(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInterval,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func BookingNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeBookingNotFound,
		Message:    "Booking not found",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"id": id},
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Timeout(message string) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    message,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
