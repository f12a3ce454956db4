package repository

import (
	"context"

	"sparkle/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetByReference retrieves a booking by its human-readable reference.
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)

	// GetByPaymentReference retrieves a booking by its payment reference.
	// Returns nil if no booking exists with the given reference.
	GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// GetByCleanerAndStatus retrieves a cleaner's bookings in a given status.
	GetByCleanerAndStatus(ctx context.Context, cleanerID string, status domain.BookingStatus) ([]*domain.Booking, error)

	// UpdateStatus updates the status of a booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// AssignCleaner sets the assigned cleaner for a booking.
	AssignCleaner(ctx context.Context, id, cleanerID string) error

	// MarkCancelled marks a booking cancelled with the cancellation time.
	MarkCancelled(ctx context.Context, id string) error

	// MarkCompleted marks a booking completed with the completion time.
	MarkCompleted(ctx context.Context, id string) error
}
