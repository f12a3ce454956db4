package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"sparkle/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingReceived  NotificationType = "BOOKING_RECEIVED"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationCleanerAssigned  NotificationType = "CLEANER_ASSIGNED"
	NotificationBookingCompleted NotificationType = "BOOKING_COMPLETED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationReceiptReady     NotificationType = "RECEIPT_READY"
)

// Notification represents a notification to be sent.
type Notification struct {
	ID          string
	Type        NotificationType
	RecipientID string // Customer or cleaner ID
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - WhatsApp client
	// - Email client (SendGrid)
	// - Push notification client for the cleaner app
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingReceived notifies the customer that their booking landed.
func (s *NotificationService) NotifyBookingReceived(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationBookingReceived,
		RecipientID: booking.CustomerID,
		Title:       "Booking Received",
		Message:     fmt.Sprintf("We received your %s clean for %s at %s. Reference %s.", booking.Service, booking.Date, booking.Time, booking.Reference),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reference":  booking.Reference,
			"total":      booking.TotalAmount,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyBookingConfirmed notifies the customer that the booking is confirmed.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.CustomerID,
		Title:       "Booking Confirmed",
		Message:     fmt.Sprintf("Your booking %s is confirmed for %s at %s.", booking.Reference, booking.Date, booking.Time),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reference":  booking.Reference,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyCleanerAssigned notifies the cleaner about their new job.
func (s *NotificationService) NotifyCleanerAssigned(ctx context.Context, booking *domain.Booking, cleaner *domain.Cleaner) error {
	notification := Notification{
		Type:        NotificationCleanerAssigned,
		RecipientID: cleaner.ID,
		Title:       "New Job Assigned",
		Message:     fmt.Sprintf("You have a %s clean on %s at %s in %s.", booking.Service, booking.Date, booking.Time, booking.Address.Suburb),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"date":       booking.Date,
			"time":       booking.Time,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyBookingCancelled notifies parties about a cancellation.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) error {
	notification := Notification{
		Type:        NotificationBookingCancelled,
		RecipientID: booking.CustomerID,
		Title:       "Booking Cancelled",
		Message:     fmt.Sprintf("Your booking %s has been cancelled.", booking.Reference),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reason":     reason,
		},
		CreatedAt: time.Now(),
	}
	if err := s.send(ctx, notification); err != nil {
		return err
	}

	if booking.AssignedCleanerID != "" {
		cleanerNote := notification
		cleanerNote.RecipientID = booking.AssignedCleanerID
		cleanerNote.Message = fmt.Sprintf("Job %s on %s at %s was cancelled.", booking.Reference, booking.Date, booking.Time)
		return s.send(ctx, cleanerNote)
	}

	return nil
}

// NotifyReceiptReady notifies the customer that the receipt is ready.
func (s *NotificationService) NotifyReceiptReady(ctx context.Context, receipt *domain.Receipt) error {
	notification := Notification{
		Type:        NotificationReceiptReady,
		RecipientID: receipt.CustomerID,
		Title:       "Receipt Ready",
		Message:     fmt.Sprintf("Your receipt for R%.0f is ready.", receipt.TotalAmount),
		Data: map[string]interface{}{
			"receipt_id": receipt.ID,
			"booking_id": receipt.BookingID,
			"total":      receipt.TotalAmount,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	// In a real implementation, this would:
	// 1. Store notification in database
	// 2. Send a WhatsApp message via the business API
	// 3. Send email if enabled

	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
