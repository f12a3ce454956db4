package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireCleanerLock attempts to acquire a lock for the given cleaner.
// Returns true if the lock was acquired, false if already held. Used while
// assigning a cleaner to a booking so two bookings cannot grab the same
// cleaner for overlapping work.
func (s *LockStore) AcquireCleanerLock(ctx context.Context, cleanerID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:cleaner:%s", cleanerID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseCleanerLock releases the lock for the given cleaner.
func (s *LockStore) ReleaseCleanerLock(ctx context.Context, cleanerID string) error {
	key := fmt.Sprintf("lock:cleaner:%s", cleanerID)

	return s.client.Del(ctx, key).Err()
}

// AcquireSubmitLock attempts to acquire the submission lock for a wizard
// session. Guards against a double-submitted review step creating two
// bookings from the same session.
func (s *LockStore) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:submit:%s", sessionID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseSubmitLock releases the submission lock for a wizard session.
func (s *LockStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("lock:submit:%s", sessionID)

	return s.client.Del(ctx, key).Err()
}
