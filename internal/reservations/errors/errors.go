package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidInterval = errors.New("end time must be after start time")

	ErrUnparseableTime = errors.New("timestamp is not in a recognized format")
)
