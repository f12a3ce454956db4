package repository

import (
	"context"

	"sparkle/internal/domain"
)

// CleanerRepository defines the persistence operations for cleaners.
type CleanerRepository interface {
	// Create persists a new cleaner.
	Create(ctx context.Context, cleaner *domain.Cleaner) error

	// GetByID retrieves a cleaner by ID.
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)

	// GetByPhone retrieves a cleaner by phone number.
	GetByPhone(ctx context.Context, phone string) (*domain.Cleaner, error)

	// GetAll retrieves all cleaners.
	GetAll(ctx context.Context) ([]*domain.Cleaner, error)

	// SetActive updates the active flag of a cleaner.
	SetActive(ctx context.Context, id string, active bool) error
}
