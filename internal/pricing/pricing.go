package pricing

import (
	"time"

	"roomstay/internal/catalog"
	reserrors "roomstay/internal/reservations/errors"
)

// Quote prices a stay at the type's hourly rate. Whole days count as 24
// hours each and the leftover is truncated to whole hours, so a stay
// shorter than one hour prices at zero. Deterministic for equal inputs.
func Quote(rt catalog.RoomType, start, end time.Time) (int64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, reserrors.ErrInvalidInterval
	}
	if !end.After(start) {
		return 0, reserrors.ErrInvalidInterval
	}

	return BillableHours(start, end) * rt.HourlyPriceCents, nil
}

// BillableHours truncates the interval to whole days plus whole
// leftover hours.
func BillableHours(start, end time.Time) int64 {
	duration := end.Sub(start)
	days := duration / (24 * time.Hour)
	remainder := duration % (24 * time.Hour)

	return int64(days)*24 + int64(remainder/time.Hour)
}
