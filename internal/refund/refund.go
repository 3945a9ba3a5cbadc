package refund

import "time"

const (
	fullRefundNotice = 48 * time.Hour
	halfRefundNotice = 24 * time.Hour
)

// Amount computes the tiered cancellation refund from the booking's
// stored price. Strictly more than 48 hours of notice refunds the full
// price, more than 24 and up to 48 hours refunds half (truncated to
// whole cents), anything less refunds nothing. A start already in the
// past always refunds zero.
func Amount(priceCents int64, startTime, at time.Time) int64 {
	notice := startTime.Sub(at)

	switch {
	case notice > fullRefundNotice:
		return priceCents
	case notice > halfRefundNotice:
		return priceCents / 2
	default:
		return 0
	}
}
