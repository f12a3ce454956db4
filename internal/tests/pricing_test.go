package tests

import (
	"math"
	"testing"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// ──────────────────────────────────────────────
// 1. QUOTE KNOWN VALUES
// ──────────────────────────────────────────────

func TestPricing_KnownConfigurations(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	testCases := []struct {
		name      string
		svc       domain.ServiceType
		bedrooms  int
		bathrooms int
		extras    []string
		want      float64
	}{
		{
			name:      "standard with no rooms and no extras is the base fee",
			svc:       domain.ServiceStandard,
			bedrooms:  0,
			bathrooms: 0,
			want:      250,
		},
		{
			name:      "standard two bed one bath with fridge",
			svc:       domain.ServiceStandard,
			bedrooms:  2,
			bathrooms: 1,
			extras:    []string{"Inside Fridge"},
			want:      250 + 40 + 30 + 60, // 380
		},
		{
			name:      "deep two bed one bath",
			svc:       domain.ServiceDeep,
			bedrooms:  2,
			bathrooms: 1,
			want:      250*1.4 + 40 + 30, // 420
		},
		{
			name:      "move in-out three bed two bath with fridge and ironing",
			svc:       domain.ServiceMoveInOut,
			bedrooms:  3,
			bathrooms: 2,
			extras:    []string{"Inside Fridge", "Ironing"},
			want:      250*1.6 + 60 + 60 + 60 + 50, // 630
		},
		{
			name:      "airbnb one bed one bath with unknown extra ignored",
			svc:       domain.ServiceAirbnb,
			bedrooms:  1,
			bathrooms: 1,
			extras:    []string{"Unknown Extra"},
			want:      250*1.2 + 20 + 30, // 350
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := pricing.CalcTotal(tc.svc, tc.bedrooms, tc.bathrooms, tc.extras)
			if got != tc.want {
				t.Errorf("total mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPricing_UnknownServiceFallsBackToStandardMultiplier(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	got := pricing.CalcTotal(domain.ServiceType("Carpet"), 2, 1, nil)
	want := pricing.CalcTotal(domain.ServiceStandard, 2, 1, nil)
	if got != want {
		t.Errorf("unknown service should price as standard: got %v, want %v", got, want)
	}
}

func TestPricing_UnknownExtraContributesZero(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	with := pricing.CalcTotal(domain.ServiceStandard, 2, 1, []string{"Chimney Sweep"})
	without := pricing.CalcTotal(domain.ServiceStandard, 2, 1, nil)
	if with != without {
		t.Errorf("unknown extra should not change the total: got %v, want %v", with, without)
	}
}

func TestPricing_Deterministic(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()
	extras := []string{"Inside Oven", "Laundry"}

	first := pricing.CalcTotal(domain.ServiceDeep, 3, 2, extras)
	for i := 0; i < 50; i++ {
		if got := pricing.CalcTotal(domain.ServiceDeep, 3, 2, extras); got != first {
			t.Fatalf("iteration %d: got %v, want %v", i, got, first)
		}
	}
}

func TestPricing_MoreRoomsNeverLowersTotal(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	for _, svc := range []domain.ServiceType{
		domain.ServiceStandard, domain.ServiceDeep, domain.ServiceMoveInOut, domain.ServiceAirbnb,
	} {
		for rooms := 0; rooms < 6; rooms++ {
			base := pricing.CalcTotal(svc, rooms, rooms, nil)
			if got := pricing.CalcTotal(svc, rooms+1, rooms, nil); got < base {
				t.Errorf("%s: extra bedroom lowered total: %v -> %v", svc, base, got)
			}
			if got := pricing.CalcTotal(svc, rooms, rooms+1, nil); got < base {
				t.Errorf("%s: extra bathroom lowered total: %v -> %v", svc, base, got)
			}
		}
	}
}

func TestPricing_AddingExtrasNeverLowersTotal(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()
	allExtras := []string{
		"Inside Fridge", "Inside Oven", "Inside Cabinets", "Interior Windows",
		"Interior Walls", "Water Plants", "Ironing", "Laundry",
	}

	prev := pricing.CalcTotal(domain.ServiceStandard, 2, 1, nil)
	for i := 1; i <= len(allExtras); i++ {
		cur := pricing.CalcTotal(domain.ServiceStandard, 2, 1, allExtras[:i])
		if cur < prev {
			t.Errorf("total decreased after adding %q: %v -> %v", allExtras[i-1], prev, cur)
		}
		prev = cur
	}
}

func TestPricing_BreakdownSumsToTotal(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	quote := pricing.Quote(domain.ServiceDeep, 3, 2, []string{"Ironing", "Water Plants"})
	// Line items are unrounded; only the total is rounded.
	sum := math.Round(quote.Base + quote.Rooms + quote.Extras)
	if quote.Total != sum {
		t.Errorf("breakdown does not sum to total: %v + %v + %v != %v",
			quote.Base, quote.Rooms, quote.Extras, quote.Total)
	}
}

// ──────────────────────────────────────────────
// 2. TIME SLOTS
// ──────────────────────────────────────────────

func TestGenerateTimeSlots_ExactSequence(t *testing.T) {
	t.Parallel()

	want := []string{
		"07:00", "07:30", "08:00", "08:30", "09:00", "09:30",
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00",
	}

	got := service.GenerateTimeSlots()
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateTimeSlots_IdenticalOnEveryCall(t *testing.T) {
	t.Parallel()

	first := service.GenerateTimeSlots()
	second := service.GenerateTimeSlots()
	if len(first) != len(second) {
		t.Fatalf("slot count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d changed between calls: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestValidTimeSlot(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		slot string
		want bool
	}{
		{"07:00", true},
		{"13:00", true},
		{"10:30", true},
		{"06:30", false},
		{"13:30", false},
		{"10:15", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := service.ValidTimeSlot(tc.slot); got != tc.want {
			t.Errorf("ValidTimeSlot(%q): got %v, want %v", tc.slot, got, tc.want)
		}
	}
}
