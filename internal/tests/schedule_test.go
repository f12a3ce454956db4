package tests

import (
	"context"
	"testing"

	"sparkle/internal/service"
)

func TestAvailableSlots_FullGridWhenNothingReserved(t *testing.T) {
	t.Parallel()

	availability := NewMockAvailabilityStore()
	schedule := service.NewScheduleService(availability)

	slots, err := schedule.AvailableSlots(context.Background(), "2026-09-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 13 {
		t.Errorf("expected 13 slots, got %d", len(slots))
	}
}

func TestAvailableSlots_SkipsReservations(t *testing.T) {
	t.Parallel()

	availability := NewMockAvailabilityStore()
	availability.MarkTaken("2026-09-10", "08:00")
	availability.MarkTaken("2026-09-10", "12:30")
	availability.MarkTaken("2026-09-11", "09:00") // Other date, must not leak.

	schedule := service.NewScheduleService(availability)

	slots, err := schedule.AvailableSlots(context.Background(), "2026-09-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot == "08:00" || slot == "12:30" {
			t.Errorf("reserved slot %s still listed", slot)
		}
	}

	// Order follows the fixed grid.
	if slots[0] != "07:00" || slots[1] != "07:30" || slots[2] != "08:30" {
		t.Errorf("unexpected ordering: %v", slots[:3])
	}
}

func TestAvailableSlots_StoreFailureSurfaces(t *testing.T) {
	t.Parallel()

	availability := NewMockAvailabilityStore()
	availability.TakenError = ErrMockTimeout

	schedule := service.NewScheduleService(availability)

	if _, err := schedule.AvailableSlots(context.Background(), "2026-09-10"); err == nil {
		t.Error("expected error when reservations cannot be loaded")
	}
}
