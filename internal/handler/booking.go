package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// AddressPayload is the wire form of a booking address.
type AddressPayload struct {
	Line1  string `json:"line1"`
	Suburb string `json:"suburb"`
	City   string `json:"city"`
}

// CreateBookingRequest is the HTTP request body for creating a booking
// directly (admin surfaces; customers go through the wizard).
type CreateBookingRequest struct {
	Service          string         `json:"service"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Extras           []string       `json:"extras"`
	Notes            string         `json:"notes"`
	Date             string         `json:"date"`
	Time             string         `json:"time"`
	Frequency        string         `json:"frequency"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Address          AddressPayload `json:"address"`
	ServiceFee       float64        `json:"service_fee"`
	PaymentReference string         `json:"payment_reference"`
}

// BookingResponse is the HTTP response for booking operations.
type BookingResponse struct {
	ID                string         `json:"id"`
	Reference         string         `json:"reference"`
	CustomerID        string         `json:"customer_id"`
	Service           string         `json:"service"`
	Bedrooms          int            `json:"bedrooms"`
	Bathrooms         int            `json:"bathrooms"`
	Extras            []string       `json:"extras"`
	Notes             string         `json:"notes,omitempty"`
	Date              string         `json:"date"`
	Time              string         `json:"time"`
	Frequency         string         `json:"frequency"`
	FirstName         string         `json:"first_name"`
	LastName          string         `json:"last_name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Address           AddressPayload `json:"address"`
	TotalAmount       float64        `json:"total_amount"`
	ServiceFee        float64        `json:"service_fee"`
	Status            string         `json:"status"`
	AssignedCleanerID string         `json:"assigned_cleaner_id,omitempty"`
	PaymentReference  string         `json:"payment_reference,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		Reference:         b.Reference,
		CustomerID:        b.CustomerID,
		Service:           string(b.Service),
		Bedrooms:          b.Bedrooms,
		Bathrooms:         b.Bathrooms,
		Extras:            b.Extras,
		Notes:             b.Notes,
		Date:              b.Date,
		Time:              b.Time,
		Frequency:         string(b.Frequency),
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		Email:             b.Email,
		Phone:             b.Phone,
		Address:           AddressPayload{Line1: b.Address.Line1, Suburb: b.Address.Suburb, City: b.Address.City},
		TotalAmount:       b.TotalAmount,
		ServiceFee:        b.ServiceFee,
		Status:            string(b.Status),
		AssignedCleanerID: b.AssignedCleanerID,
		PaymentReference:  b.PaymentReference,
		CreatedAt:         b.CreatedAt,
	}
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	frequency := domain.Frequency(req.Frequency)
	if req.Frequency == "" {
		frequency = domain.FrequencyOneTime
	}

	booking, err := h.bookingService.Create(c.Request.Context(), service.CreateBookingRequest{
		Service:          domain.ServiceType(req.Service),
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Extras:           req.Extras,
		Notes:            req.Notes,
		Date:             req.Date,
		Time:             req.Time,
		Frequency:        frequency,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          domain.Address{Line1: req.Address.Line1, Suburb: req.Address.Suburb, City: req.Address.City},
		ServiceFee:       req.ServiceFee,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, toBookingResponse(booking))
	}

	respondJSON(c, http.StatusOK, gin.H{"bookings": responses})
}

// Confirm handles POST /v1/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	booking, err := h.bookingService.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// AssignRequest is the HTTP request body for assigning a cleaner.
type AssignRequest struct {
	CleanerID string `json:"cleaner_id"`
}

// Assign handles POST /v1/bookings/:id/assign
func (h *BookingHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.AssignCleaner(c.Request.Context(), c.Param("id"), req.CleanerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// ReceiptResponse is the HTTP response for a completed booking's receipt.
type ReceiptResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"booking_id"`
	Reference       string  `json:"reference"`
	Service         string  `json:"service"`
	Base            float64 `json:"base"`
	Rooms           float64 `json:"rooms"`
	Extras          float64 `json:"extras"`
	Total           float64 `json:"total"`
	ServiceFee      float64 `json:"service_fee"`
	CleanerEarnings float64 `json:"cleaner_earnings"`
	CompanyEarnings float64 `json:"company_earnings"`
}

// Complete handles POST /v1/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	receipt, err := h.bookingService.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ReceiptResponse{
		ID:              receipt.ID,
		BookingID:       receipt.BookingID,
		Reference:       receipt.Reference,
		Service:         string(receipt.Service),
		Base:            receipt.BaseAmount,
		Rooms:           receipt.RoomsAmount,
		Extras:          receipt.ExtrasAmount,
		Total:           receipt.TotalAmount,
		ServiceFee:      receipt.ServiceFee,
		CleanerEarnings: receipt.CleanerEarnings,
		CompanyEarnings: receipt.CompanyEarnings,
	})
}

// CancelRequest is the HTTP request body for cancelling a booking.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	// Reason is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// EarningsResponse is the HTTP response for a booking's payout split.
type EarningsResponse struct {
	TotalAmount     float64 `json:"total_amount"`
	ServiceFee      float64 `json:"service_fee"`
	Subtotal        float64 `json:"subtotal"`
	Rate            float64 `json:"rate"`
	CleanerEarnings float64 `json:"cleaner_earnings"`
	CompanyEarnings float64 `json:"company_earnings"`
}

// Earnings handles GET /v1/bookings/:id/earnings
func (h *BookingHandler) Earnings(c *gin.Context) {
	split, err := h.bookingService.Earnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, EarningsResponse{
		TotalAmount:     split.TotalAmount,
		ServiceFee:      split.ServiceFee,
		Subtotal:        split.Subtotal,
		Rate:            split.Rate,
		CleanerEarnings: split.CleanerEarnings,
		CompanyEarnings: split.CompanyEarnings,
	})
}
