package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// CleanerCacheTTL is short because hire dates and active flags feed payout
// calculations; stale reads here would show wrong commission tiers.
const CleanerCacheTTL = 60 * time.Second

const cleanerCachePrefix = "cache:cleaner:"

// CachedCleaner represents a cached cleaner entity.
type CachedCleaner struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	HireDate *time.Time `json:"hire_date"`
	Active   bool       `json:"active"`
}

// GetCleaner retrieves a cleaner from cache. Returns (nil, nil) on cache miss.
func (s *CacheStore) GetCleaner(ctx context.Context, cleanerID string) (*CachedCleaner, error) {
	key := cleanerCachePrefix + cleanerID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cleaner CachedCleaner
	if err := json.Unmarshal(data, &cleaner); err != nil {
		return nil, err
	}
	return &cleaner, nil
}

// SetCleaner stores a cleaner in cache.
func (s *CacheStore) SetCleaner(ctx context.Context, cleaner *CachedCleaner) error {
	key := cleanerCachePrefix + cleaner.ID
	data, err := json.Marshal(cleaner)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, CleanerCacheTTL).Err()
}

// InvalidateCleaner removes a cleaner from cache.
func (s *CacheStore) InvalidateCleaner(ctx context.Context, cleanerID string) error {
	key := cleanerCachePrefix + cleanerID
	return s.client.Del(ctx, key).Err()
}
