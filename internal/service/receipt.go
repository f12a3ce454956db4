package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sparkle/internal/domain"
)

// ReceiptService handles receipt generation for completed bookings.
type ReceiptService struct {
	pricingService      *PricingService
	notificationService *NotificationService
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(pricingService *PricingService, notificationService *NotificationService) *ReceiptService {
	return &ReceiptService{
		pricingService:      pricingService,
		notificationService: notificationService,
	}
}

// GenerateReceiptRequest contains the parameters for generating a receipt.
type GenerateReceiptRequest struct {
	Booking *domain.Booking
	Cleaner *domain.Cleaner
}

// GenerateReceipt builds a receipt for a completed booking: the itemized
// price breakdown re-derived from the stored configuration and the earnings
// split between cleaner and company.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, req GenerateReceiptRequest) (*domain.Receipt, error) {
	if req.Booking == nil {
		return nil, ErrInvalidBookingID
	}

	booking := req.Booking
	breakdown := s.pricingService.Quote(booking.Service, booking.Bedrooms, booking.Bathrooms, booking.Extras)

	var hireDate *time.Time
	var cleanerID string
	if req.Cleaner != nil {
		hireDate = req.Cleaner.HireDate
		cleanerID = req.Cleaner.ID
	}
	split := SplitEarnings(booking.TotalAmount, booking.ServiceFee, hireDate, time.Now())

	receipt := &domain.Receipt{
		ID:              uuid.New().String(),
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		CustomerID:      booking.CustomerID,
		CleanerID:       cleanerID,
		Service:         booking.Service,
		Date:            booking.Date,
		Time:            booking.Time,
		BaseAmount:      breakdown.Base,
		RoomsAmount:     breakdown.Rooms,
		ExtrasAmount:    breakdown.Extras,
		TotalAmount:     booking.TotalAmount,
		ServiceFee:      booking.ServiceFee,
		CleanerEarnings: split.CleanerEarnings,
		CompanyEarnings: split.CompanyEarnings,
		CreatedAt:       time.Now(),
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReceiptReady(ctx, receipt)
	}

	return receipt, nil
}

// FormatReceipt formats the receipt as a string (for email/print).
func (s *ReceiptService) FormatReceipt(receipt *domain.Receipt) string {
	return `
=====================================
       CLEANING RECEIPT
=====================================
Receipt ID: ` + receipt.ID + `
Booking:    ` + receipt.Reference + `
Date: ` + receipt.CreatedAt.Format("Jan 02, 2006 3:04 PM") + `

SERVICE
-------------------------------------
Type:      ` + string(receipt.Service) + `
Scheduled: ` + receipt.Date + ` ` + receipt.Time + `

PRICE BREAKDOWN
-------------------------------------
Base:             R` + formatAmount(receipt.BaseAmount) + `
Rooms:            R` + formatAmount(receipt.RoomsAmount) + `
Extras:           R` + formatAmount(receipt.ExtrasAmount) + `
-------------------------------------
TOTAL:            R` + formatAmount(receipt.TotalAmount) + `

=====================================
   Thank you for booking with us!
=====================================
`
}

func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
