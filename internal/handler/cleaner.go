package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// CleanerHandler handles HTTP requests for cleaners.
type CleanerHandler struct {
	cleanerService *service.CleanerService
}

// NewCleanerHandler creates a new CleanerHandler.
func NewCleanerHandler(cleanerService *service.CleanerService) *CleanerHandler {
	return &CleanerHandler{cleanerService: cleanerService}
}

// RegisterCleanerRequest is the HTTP request body for cleaner registration.
type RegisterCleanerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	HireDate string `json:"hire_date"` // ISO date, optional
}

// CleanerResponse is the HTTP response for cleaner data.
type CleanerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	HireDate string `json:"hire_date,omitempty"`
	Active   bool   `json:"active"`
}

func toCleanerResponse(cleaner *domain.Cleaner) CleanerResponse {
	resp := CleanerResponse{
		ID:     cleaner.ID,
		Name:   cleaner.Name,
		Phone:  cleaner.Phone,
		Email:  cleaner.Email,
		Active: cleaner.Active,
	}
	if cleaner.HireDate != nil {
		resp.HireDate = cleaner.HireDate.Format("2006-01-02")
	}
	return resp
}

// Register handles POST /v1/cleaners/register
func (h *CleanerHandler) Register(c *gin.Context) {
	var req RegisterCleanerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and phone are required"})
		return
	}

	var hireDate *time.Time
	if req.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "hire_date must be an ISO date"})
			return
		}
		hireDate = &parsed
	}

	cleaner, err := h.cleanerService.Register(c.Request.Context(), service.RegisterCleanerRequest{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		HireDate: hireDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toCleanerResponse(cleaner))
}

// GetCleaner handles GET /v1/cleaners/:id
func (h *CleanerHandler) GetCleaner(c *gin.Context) {
	cleaner, err := h.cleanerService.GetCleaner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCleanerResponse(cleaner))
}

// GetAll handles GET /v1/cleaners
func (h *CleanerHandler) GetAll(c *gin.Context) {
	cleaners, err := h.cleanerService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CleanerResponse, 0, len(cleaners))
	for _, cleaner := range cleaners {
		responses = append(responses, toCleanerResponse(cleaner))
	}

	respondJSON(c, http.StatusOK, gin.H{"cleaners": responses})
}

// PayoutLineResponse is one line of a cleaner's payout listing.
type PayoutLineResponse struct {
	BookingID       string  `json:"booking_id"`
	Reference       string  `json:"reference"`
	Date            string  `json:"date"`
	TotalAmount     float64 `json:"total_amount"`
	ServiceFee      float64 `json:"service_fee"`
	CleanerEarnings float64 `json:"cleaner_earnings"`
}

// PayoutsResponse is the HTTP response for a cleaner's payouts.
type PayoutsResponse struct {
	CleanerID     string               `json:"cleaner_id"`
	Rate          float64              `json:"rate"`
	Lines         []PayoutLineResponse `json:"lines"`
	TotalEarnings float64              `json:"total_earnings"`
}

// Payouts handles GET /v1/cleaners/:id/payouts
func (h *CleanerHandler) Payouts(c *gin.Context) {
	summary, err := h.cleanerService.Payouts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	lines := make([]PayoutLineResponse, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, PayoutLineResponse{
			BookingID:       line.BookingID,
			Reference:       line.Reference,
			Date:            line.Date,
			TotalAmount:     line.TotalAmount,
			ServiceFee:      line.ServiceFee,
			CleanerEarnings: line.CleanerEarnings,
		})
	}

	respondJSON(c, http.StatusOK, PayoutsResponse{
		CleanerID:     summary.CleanerID,
		Rate:          summary.Rate,
		Lines:         lines,
		TotalEarnings: summary.TotalEarnings,
	})
}
