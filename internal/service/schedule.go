package service

import (
	"context"
	"fmt"

	"sparkle/internal/redis"
)

// ScheduleService answers which time slots are still bookable on a date.
type ScheduleService struct {
	availability redis.AvailabilityStoreInterface
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(availability redis.AvailabilityStoreInterface) *ScheduleService {
	return &ScheduleService{availability: availability}
}

// AvailableSlots returns the bookable start times for a date: the fixed slot
// sequence minus reservations. Order matches GenerateTimeSlots.
func (s *ScheduleService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	taken, err := s.availability.Taken(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load taken slots: %w", err)
	}

	takenSet := make(map[string]bool, len(taken))
	for _, slot := range taken {
		takenSet[slot] = true
	}

	available := []string{}
	for _, slot := range GenerateTimeSlots() {
		if !takenSet[slot] {
			available = append(available, slot)
		}
	}

	return available, nil
}
