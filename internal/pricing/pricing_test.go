package pricing

import (
	"errors"
	"testing"
	"time"

	"roomstay/internal/catalog"
	reserrors "roomstay/internal/reservations/errors"
)

var testType = catalog.RoomType{Code: "A", Name: "Room type A", HourlyPriceCents: 1000, TotalRooms: 2}

func TestQuote(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantCents int64
	}{
		{
			name:      "one day plus one hour bills 25 hours",
			start:     base,
			end:       base.Add(25 * time.Hour),
			wantCents: 25000,
		},
		{
			name:      "partial hour is dropped",
			start:     base,
			end:       base.Add(1*time.Hour + 59*time.Minute),
			wantCents: 1000,
		},
		{
			name:      "sub-hour stay prices at zero",
			start:     base,
			end:       base.Add(45 * time.Minute),
			wantCents: 0,
		},
		{
			name:      "exact multi-day stay",
			start:     base,
			end:       base.Add(72 * time.Hour),
			wantCents: 72000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote(testType, tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantCents {
				t.Errorf("expected %d cents, got %d", tt.wantCents, got)
			}
		})
	}
}

func TestQuote_InvalidIntervals(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"end equals start", base, base},
		{"end before start", base, base.Add(-time.Hour)},
		{"zero start", time.Time{}, base},
		{"zero end", base, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Quote(testType, tt.start, tt.end); !errors.Is(err, reserrors.ErrInvalidInterval) {
				t.Errorf("expected ErrInvalidInterval, got %v", err)
			}
		})
	}
}

func TestQuote_Deterministic(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Hour)

	first, err := Quote(testType, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Quote(testType, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("quote changed between calls: %d then %d", first, again)
		}
	}
}
