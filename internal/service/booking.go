package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sparkle/internal/domain"
	"sparkle/internal/redis"
	"sparkle/internal/repository"
)

const cleanerAssignLockTTL = 10 * time.Second

// BookingService handles the booking lifecycle from creation to completion.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	customerRepo        repository.CustomerRepository
	cleanerService      *CleanerService
	pricingService      *PricingService
	availability        redis.AvailabilityStoreInterface
	locks               redis.LockStoreInterface
	notificationService *NotificationService
	receiptService      *ReceiptService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	cleanerService *CleanerService,
	pricingService *PricingService,
	availability redis.AvailabilityStoreInterface,
	locks redis.LockStoreInterface,
	notificationService *NotificationService,
	receiptService *ReceiptService,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		customerRepo:        customerRepo,
		cleanerService:      cleanerService,
		pricingService:      pricingService,
		availability:        availability,
		locks:               locks,
		notificationService: notificationService,
		receiptService:      receiptService,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	Service          domain.ServiceType
	Bedrooms         int
	Bathrooms        int
	Extras           []string
	Notes            string
	Date             string
	Time             string
	Frequency        domain.Frequency
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          domain.Address
	ServiceFee       float64
	PaymentReference string
}

// Create validates the request, computes the charged total with the pricing
// engine, reserves the time slot, and persists the booking. The pricing
// engine itself stays permissive about room counts; the API boundary is
// where negative values are rejected.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.Service.Valid() {
		return nil, ErrServiceRequired
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 {
		return nil, ErrInvalidRoomCount
	}
	if req.Date == "" || req.Time == "" {
		return nil, ErrScheduleRequired
	}
	if !ValidTimeSlot(req.Time) {
		return nil, ErrInvalidTimeSlot
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrContactRequired
	}

	// Idempotency on the payment reference: a retried submission with the
	// same reference returns the booking it already created.
	if req.PaymentReference != "" {
		existing, err := s.bookingRepo.GetByPaymentReference(ctx, req.PaymentReference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	customer, err := s.findOrCreateCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	reserved, err := s.availability.Reserve(ctx, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}
	if !reserved {
		return nil, ErrSlotTaken
	}

	total := s.pricingService.CalcTotal(req.Service, req.Bedrooms, req.Bathrooms, req.Extras)

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		Reference:        newBookingReference(),
		CustomerID:       customer.ID,
		Service:          req.Service,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Extras:           req.Extras,
		Notes:            req.Notes,
		Date:             req.Date,
		Time:             req.Time,
		Frequency:        req.Frequency,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		TotalAmount:      total,
		ServiceFee:       req.ServiceFee,
		Status:           domain.BookingStatusPending,
		PaymentReference: req.PaymentReference,
		CreatedAt:        time.Now(),
	}
	if booking.Extras == nil {
		booking.Extras = []string{}
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Give the slot back; the booking never existed.
		_ = s.availability.Release(ctx, req.Date, req.Time)
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingReceived(ctx, booking)
	}

	return booking, nil
}

// findOrCreateCustomer resolves the customer record for a booking by email,
// creating one from the contact fields when none exists.
func (s *BookingService) findOrCreateCustomer(ctx context.Context, req CreateBookingRequest) (*domain.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer := &domain.Customer{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetAll retrieves all bookings.
func (s *BookingService) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// Confirm moves a pending booking to CONFIRMED.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusConfirmed

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingConfirmed(ctx, booking)
	}

	return booking, nil
}

// AssignCleaner assigns a cleaner to a booking. The cleaner is locked for
// the duration of the assignment so two bookings cannot race for them.
func (s *BookingService) AssignCleaner(ctx context.Context, bookingID, cleanerID string) (*domain.Booking, error) {
	if cleanerID == "" {
		return nil, ErrInvalidCleanerID
	}

	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusCompleted {
		return nil, ErrBookingCompleted
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, ErrBookingAlreadyCancelled
	}

	cleaner, err := s.cleanerService.GetCleaner(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	if !cleaner.Active {
		return nil, ErrCleanerInactive
	}

	locked, err := s.locks.AcquireCleanerLock(ctx, cleanerID, cleanerAssignLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire cleaner lock: %w", err)
	}
	if !locked {
		return nil, ErrCleanerBusy
	}
	defer func() { _ = s.locks.ReleaseCleanerLock(ctx, cleanerID) }()

	if err := s.bookingRepo.AssignCleaner(ctx, booking.ID, cleanerID); err != nil {
		return nil, err
	}
	booking.AssignedCleanerID = cleanerID

	if s.notificationService != nil {
		_ = s.notificationService.NotifyCleanerAssigned(ctx, booking, cleaner)
	}

	return booking, nil
}

// Complete marks a confirmed booking completed and generates the receipt
// with the cleaner/company earnings split.
func (s *BookingService) Complete(ctx context.Context, bookingID string) (*domain.Receipt, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return nil, ErrBookingNotConfirmed
	}
	if booking.AssignedCleanerID == "" {
		return nil, ErrNoCleanerAssigned
	}

	cleaner, err := s.cleanerService.GetCleaner(ctx, booking.AssignedCleanerID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.MarkCompleted(ctx, booking.ID); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCompleted
	booking.CompletedAt = time.Now()

	receipt, err := s.receiptService.GenerateReceipt(ctx, GenerateReceiptRequest{
		Booking: booking,
		Cleaner: cleaner,
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// Cancel cancels a booking and frees its time slot. Completed bookings
// cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case domain.BookingStatusCancelled:
		return nil, ErrBookingAlreadyCancelled
	case domain.BookingStatusCompleted:
		return nil, ErrBookingCompleted
	}

	if err := s.bookingRepo.MarkCancelled(ctx, booking.ID); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()

	// Best effort: a leaked reservation expires with the set.
	_ = s.availability.Release(ctx, booking.Date, booking.Time)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCancelled(ctx, booking, reason)
	}

	return booking, nil
}

// Earnings recomputes the payout split for a booking at read time, so a
// commission-policy change never silently rewrites historical payouts that
// were already read under the old policy.
func (s *BookingService) Earnings(ctx context.Context, bookingID string) (*EarningsSplit, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.AssignedCleanerID == "" {
		return nil, ErrNoCleanerAssigned
	}

	cleaner, err := s.cleanerService.GetCleaner(ctx, booking.AssignedCleanerID)
	if err != nil {
		return nil, err
	}

	split := SplitEarnings(booking.TotalAmount, booking.ServiceFee, cleaner.HireDate, time.Now())
	return &split, nil
}

// newBookingReference generates a short human-readable booking code.
func newBookingReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SP-" + id[:8]
}
