package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// WizardHandler handles HTTP requests for the booking wizard.
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// WizardStateResponse is the HTTP response carrying session state plus the
// live quote the summary panel renders.
type WizardStateResponse struct {
	State *domain.WizardState `json:"state"`
	Quote QuoteBreakdown      `json:"quote"`
}

// QuoteBreakdown mirrors service.PriceBreakdown on the wire.
type QuoteBreakdown struct {
	Base   float64 `json:"base"`
	Rooms  float64 `json:"rooms"`
	Extras float64 `json:"extras"`
	Total  float64 `json:"total"`
}

// GetState handles GET /v1/wizard/:session
func (h *WizardHandler) GetState(c *gin.Context) {
	state, quote, err := h.wizardService.State(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WizardStateResponse{
		State: state,
		Quote: QuoteBreakdown{Base: quote.Base, Rooms: quote.Rooms, Extras: quote.Extras, Total: quote.Total},
	})
}

// MountRequest is the HTTP request body for mounting a step page.
type MountRequest struct {
	Slug string `json:"slug"`
	Step int    `json:"step"`
}

// MountResponse is the HTTP response for a mount. When Redirect is set the
// client must navigate there instead of rendering the step.
type MountResponse struct {
	State    *domain.WizardState `json:"state,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// Mount handles POST /v1/wizard/:session/mount
func (h *WizardHandler) Mount(c *gin.Context) {
	var req MountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.wizardService.Mount(c.Request.Context(), c.Param("session"), req.Slug, req.Step)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, MountResponse{State: result.State, Redirect: result.Redirect})
}

// UpdateFieldRequest is the HTTP request body for a single-field update.
type UpdateFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// UpdateField handles PATCH /v1/wizard/:session/field
func (h *WizardHandler) UpdateField(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Field == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "field is required"})
		return
	}

	state, err := h.wizardService.UpdateField(c.Request.Context(), c.Param("session"), req.Field, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"state": state})
}

// Resume handles GET /v1/wizard/:session/resume
//
// Returns the step URL a returning customer should land on, for the legacy
// top-level booking entry point.
func (h *WizardHandler) Resume(c *gin.Context) {
	state, _, err := h.wizardService.State(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"path": service.ResumePath(state)})
}

// Reset handles POST /v1/wizard/:session/reset
func (h *WizardHandler) Reset(c *gin.Context) {
	if err := h.wizardService.Reset(c.Request.Context(), c.Param("session")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"status": "reset"})
}

// Submit handles POST /v1/wizard/:session/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	booking, err := h.wizardService.Submit(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}
