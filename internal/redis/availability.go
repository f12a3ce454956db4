package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reservations are kept well past the booking date so late cancellations
// still find the slot to release.
const slotReservationTTL = 45 * 24 * time.Hour

const slotKeyPrefix = "slots:taken:"

// AvailabilityStore tracks which time slots are taken per service date.
// One Redis set per date, members are "HH:MM" slot strings.
type AvailabilityStore struct {
	client *redis.Client
}

// NewAvailabilityStore creates a new AvailabilityStore.
func NewAvailabilityStore(client *redis.Client) *AvailabilityStore {
	return &AvailabilityStore{client: client}
}

// Reserve marks a slot taken for the given date. Returns false if the slot
// was already taken.
func (s *AvailabilityStore) Reserve(ctx context.Context, date, slot string) (bool, error) {
	key := slotKeyPrefix + date

	added, err := s.client.SAdd(ctx, key, slot).Result()
	if err != nil {
		return false, err
	}
	// Refresh expiry on every write; cheap relative to the booking rate.
	if err := s.client.Expire(ctx, key, slotReservationTTL).Err(); err != nil {
		return false, err
	}

	return added == 1, nil
}

// Release frees a previously reserved slot for the given date.
func (s *AvailabilityStore) Release(ctx context.Context, date, slot string) error {
	return s.client.SRem(ctx, slotKeyPrefix+date, slot).Err()
}

// Taken returns the set of taken slots for the given date.
func (s *AvailabilityStore) Taken(ctx context.Context, date string) ([]string, error) {
	return s.client.SMembers(ctx, slotKeyPrefix+date).Result()
}

// IsTaken checks whether a single slot is taken for the given date.
func (s *AvailabilityStore) IsTaken(ctx context.Context, date, slot string) (bool, error) {
	return s.client.SIsMember(ctx, slotKeyPrefix+date, slot).Result()
}
