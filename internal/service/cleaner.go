package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sparkle/internal/domain"
	"sparkle/internal/redis"
	"sparkle/internal/repository"
)

// CleanerService handles the cleaner roster and payout listings.
type CleanerService struct {
	cleanerRepo repository.CleanerRepository
	bookingRepo repository.BookingRepository
	cache       redis.CleanerCacheInterface
}

// NewCleanerService creates a new CleanerService.
func NewCleanerService(
	cleanerRepo repository.CleanerRepository,
	bookingRepo repository.BookingRepository,
	cache redis.CleanerCacheInterface,
) *CleanerService {
	return &CleanerService{
		cleanerRepo: cleanerRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// RegisterCleanerRequest contains the parameters for registering a cleaner.
type RegisterCleanerRequest struct {
	Name     string
	Phone    string
	Email    string
	HireDate *time.Time
}

// Register adds a cleaner to the roster.
func (s *CleanerService) Register(ctx context.Context, req RegisterCleanerRequest) (*domain.Cleaner, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, ErrInvalidCleanerID
	}

	cleaner := &domain.Cleaner{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		HireDate: req.HireDate,
		Active:   true,
	}

	if err := s.cleanerRepo.Create(ctx, cleaner); err != nil {
		return nil, err
	}

	return cleaner, nil
}

// GetCleaner retrieves a cleaner, consulting the cache first. Cache failures
// fall through to the repository.
func (s *CleanerService) GetCleaner(ctx context.Context, cleanerID string) (*domain.Cleaner, error) {
	if cleanerID == "" {
		return nil, ErrInvalidCleanerID
	}

	if s.cache != nil {
		if cached, err := s.cache.GetCleaner(ctx, cleanerID); err == nil && cached != nil {
			return &domain.Cleaner{
				ID:       cached.ID,
				Name:     cached.Name,
				Phone:    cached.Phone,
				Email:    cached.Email,
				HireDate: cached.HireDate,
				Active:   cached.Active,
			}, nil
		}
	}

	cleaner, err := s.cleanerRepo.GetByID(ctx, cleanerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetCleaner(ctx, &redis.CachedCleaner{
			ID:       cleaner.ID,
			Name:     cleaner.Name,
			Phone:    cleaner.Phone,
			Email:    cleaner.Email,
			HireDate: cleaner.HireDate,
			Active:   cleaner.Active,
		})
	}

	return cleaner, nil
}

// GetAll retrieves all cleaners.
func (s *CleanerService) GetAll(ctx context.Context) ([]*domain.Cleaner, error) {
	return s.cleanerRepo.GetAll(ctx)
}

// SetActive updates a cleaner's active flag and drops the cached copy.
func (s *CleanerService) SetActive(ctx context.Context, cleanerID string, active bool) error {
	if cleanerID == "" {
		return ErrInvalidCleanerID
	}

	if err := s.cleanerRepo.SetActive(ctx, cleanerID, active); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCleaner(ctx, cleanerID)
	}

	return nil
}

// PayoutLine is one completed booking's contribution to a cleaner's payout.
type PayoutLine struct {
	BookingID       string
	Reference       string
	Date            string
	TotalAmount     float64
	ServiceFee      float64
	CleanerEarnings float64
}

// PayoutSummary lists a cleaner's completed bookings with earnings,
// recomputed at read time from the current commission policy.
type PayoutSummary struct {
	CleanerID     string
	Rate          float64
	Lines         []PayoutLine
	TotalEarnings float64
}

// Payouts computes the payout listing for a cleaner's completed bookings.
func (s *CleanerService) Payouts(ctx context.Context, cleanerID string) (*PayoutSummary, error) {
	cleaner, err := s.GetCleaner(ctx, cleanerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByCleanerAndStatus(ctx, cleaner.ID, domain.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &PayoutSummary{
		CleanerID: cleaner.ID,
		Rate:      CommissionRateAt(cleaner.HireDate, now),
		Lines:     []PayoutLine{},
	}

	for _, booking := range bookings {
		earnings := CleanerEarningsAt(booking.TotalAmount, booking.ServiceFee, cleaner.HireDate, now)
		summary.Lines = append(summary.Lines, PayoutLine{
			BookingID:       booking.ID,
			Reference:       booking.Reference,
			Date:            booking.Date,
			TotalAmount:     booking.TotalAmount,
			ServiceFee:      booking.ServiceFee,
			CleanerEarnings: earnings,
		})
		summary.TotalEarnings += earnings
	}

	return summary, nil
}
