package redis

import (
	"context"
	"time"

	"sparkle/internal/domain"
)

// WizardStoreInterface defines the interface for wizard session state.
type WizardStoreInterface interface {
	Get(ctx context.Context, sessionID string) (*domain.WizardState, error)
	Set(ctx context.Context, sessionID string, state *domain.WizardState) error
	Delete(ctx context.Context, sessionID string) error
}

// AvailabilityStoreInterface defines the interface for slot reservations.
type AvailabilityStoreInterface interface {
	Reserve(ctx context.Context, date, slot string) (bool, error)
	Release(ctx context.Context, date, slot string) error
	Taken(ctx context.Context, date string) ([]string, error)
	IsTaken(ctx context.Context, date, slot string) (bool, error)
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireCleanerLock(ctx context.Context, cleanerID string, ttl time.Duration) (bool, error)
	ReleaseCleanerLock(ctx context.Context, cleanerID string) error
	AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// CleanerCacheInterface defines the interface for cleaner caching.
type CleanerCacheInterface interface {
	GetCleaner(ctx context.Context, cleanerID string) (*CachedCleaner, error)
	SetCleaner(ctx context.Context, cleaner *CachedCleaner) error
	InvalidateCleaner(ctx context.Context, cleanerID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ WizardStoreInterface       = (*WizardStore)(nil)
	_ AvailabilityStoreInterface = (*AvailabilityStore)(nil)
	_ LockStoreInterface         = (*LockStore)(nil)
	_ CleanerCacheInterface      = (*CacheStore)(nil)
)
