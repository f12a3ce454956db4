package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// QuoteHandler handles HTTP requests for price quotes and time slots.
type QuoteHandler struct {
	pricingService  *service.PricingService
	scheduleService *service.ScheduleService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(pricingService *service.PricingService, scheduleService *service.ScheduleService) *QuoteHandler {
	return &QuoteHandler{
		pricingService:  pricingService,
		scheduleService: scheduleService,
	}
}

// QuoteRequest is the HTTP request body for a price quote.
type QuoteRequest struct {
	Service   string   `json:"service"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Extras    []string `json:"extras"`
}

// QuoteResponse is the HTTP response for a price quote.
type QuoteResponse struct {
	Service   string   `json:"service"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Extras    []string `json:"extras"`
	Base      float64  `json:"base"`
	Rooms     float64  `json:"rooms"`
	ExtrasFee float64  `json:"extras_fee"`
	Total     float64  `json:"total"`
}

// Quote handles POST /v1/quote
//
// Quotes are permissive: an unknown service prices at the standard
// multiplier and unknown extras at zero, matching what submission will
// charge for the same inputs.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	breakdown := h.pricingService.Quote(domain.ServiceType(req.Service), req.Bedrooms, req.Bathrooms, req.Extras)

	extras := req.Extras
	if extras == nil {
		extras = []string{}
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		Service:   req.Service,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Extras:    extras,
		Base:      breakdown.Base,
		Rooms:     breakdown.Rooms,
		ExtrasFee: breakdown.Extras,
		Total:     breakdown.Total,
	})
}

// SlotsResponse is the HTTP response for time slot listings.
type SlotsResponse struct {
	Date  string   `json:"date,omitempty"`
	Slots []string `json:"slots"`
}

// Slots handles GET /v1/slots
//
// Without a date it returns the full fixed slot sequence; with ?date= it
// filters out slots already reserved for that date.
func (h *QuoteHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		respondJSON(c, http.StatusOK, SlotsResponse{Slots: service.GenerateTimeSlots()})
		return
	}

	slots, err := h.scheduleService.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SlotsResponse{Date: date, Slots: slots})
}
