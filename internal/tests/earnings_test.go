package tests

import (
	"testing"
	"time"

	"sparkle/internal/service"
)

// ──────────────────────────────────────────────
// 1. COMMISSION RATE TIERS
// ──────────────────────────────────────────────

func TestCommissionRate_TenureTiers(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		hireDate *time.Time
		want     float64
	}{
		{
			name:     "nil hire date treated as newly hired",
			hireDate: nil,
			want:     0.60,
		},
		{
			name:     "hired this month",
			hireDate: datePtr(2026, time.June, 1),
			want:     0.60,
		},
		{
			name:     "three calendar months of tenure",
			hireDate: datePtr(2026, time.March, 20),
			want:     0.60,
		},
		{
			name:     "exactly four calendar months",
			hireDate: datePtr(2026, time.February, 28),
			want:     0.70,
		},
		{
			name:     "five calendar months",
			hireDate: datePtr(2026, time.January, 3),
			want:     0.70,
		},
		{
			name:     "tenure spanning a year boundary",
			hireDate: datePtr(2025, time.November, 30),
			want:     0.70,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := service.CommissionRateAt(tc.hireDate, now)
			if got != tc.want {
				t.Errorf("rate mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

// The tier counts whole calendar months and ignores the day of month, so two
// cleaners hired a day apart can land on opposite sides of the boundary.
func TestCommissionRate_DayOfMonthIgnored(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	lastOfFeb := datePtr(2026, time.February, 28)
	firstOfMarch := datePtr(2026, time.March, 1)

	if got := service.CommissionRateAt(lastOfFeb, now); got != 0.70 {
		t.Errorf("hired Feb 28: got %v, want 0.70", got)
	}
	if got := service.CommissionRateAt(firstOfMarch, now); got != 0.60 {
		t.Errorf("hired Mar 1: got %v, want 0.60", got)
	}
}

// ──────────────────────────────────────────────
// 2. EARNINGS SPLIT
// ──────────────────────────────────────────────

func TestCleanerEarnings_KnownValues(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		total      float64
		serviceFee float64
		hireDate   *time.Time
		want       float64
	}{
		{
			name:       "base rate on fee-free booking",
			total:      1000,
			serviceFee: 0,
			hireDate:   nil,
			want:       600,
		},
		{
			name:       "base rate with service fee excluded",
			total:      1000,
			serviceFee: 100,
			hireDate:   nil,
			want:       540, // round(900 * 0.60)
		},
		{
			name:       "senior rate with service fee excluded",
			total:      1000,
			serviceFee: 100,
			hireDate:   datePtr(2025, time.June, 15),
			want:       630, // round(900 * 0.70)
		},
		{
			name:       "fractional subtotal rounds to whole units",
			total:      381,
			serviceFee: 0,
			hireDate:   nil,
			want:       229, // round(228.6)
		},
		{
			name:       "zero total yields zero",
			total:      0,
			serviceFee: 0,
			hireDate:   nil,
			want:       0,
		},
		{
			name:       "negative total yields zero",
			total:      -50,
			serviceFee: 0,
			hireDate:   nil,
			want:       0,
		},
		{
			name:       "fee at or above total yields zero",
			total:      100,
			serviceFee: 100,
			hireDate:   nil,
			want:       0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := service.CleanerEarningsAt(tc.total, tc.serviceFee, tc.hireDate, now)
			if got != tc.want {
				t.Errorf("earnings mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSplitEarnings_SharesSumToTotal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	totals := []float64{0, 1, 99.5, 250, 381, 470, 1000, 12345.67}
	fees := []float64{0, 25, 100}
	hireDates := []*time.Time{nil, datePtr(2026, time.May, 1), datePtr(2024, time.January, 1)}

	for _, total := range totals {
		for _, fee := range fees {
			for _, hired := range hireDates {
				split := service.SplitEarnings(total, fee, hired, now)
				if split.CleanerEarnings+split.CompanyEarnings != split.TotalAmount {
					t.Errorf("shares do not sum to total: %v + %v != %v (total=%v fee=%v)",
						split.CleanerEarnings, split.CompanyEarnings, split.TotalAmount, total, fee)
				}
			}
		}
	}
}

func TestSplitEarnings_CompanyKeepsServiceFee(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	split := service.SplitEarnings(1000, 100, nil, now)
	if split.Subtotal != 900 {
		t.Errorf("subtotal mismatch: got %v, want 900", split.Subtotal)
	}
	// Company share covers the full fee plus its cut of the subtotal.
	if split.CompanyEarnings < split.ServiceFee {
		t.Errorf("company share %v is less than the service fee %v",
			split.CompanyEarnings, split.ServiceFee)
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
