package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sparkle/internal/repository"
	"sparkle/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrInvalidFieldValue),
		errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrServiceRequired),
		errors.Is(err, service.ErrScheduleRequired),
		errors.Is(err, service.ErrContactRequired),
		errors.Is(err, service.ErrInvalidRoomCount),
		errors.Is(err, service.ErrInvalidTimeSlot),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidCleanerID),
		errors.Is(err, service.ErrInvalidCustomerID):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrSubmitInProgress),
		errors.Is(err, service.ErrCleanerBusy),
		errors.Is(err, service.ErrBookingNotPending),
		errors.Is(err, service.ErrBookingNotConfirmed),
		errors.Is(err, service.ErrBookingAlreadyCancelled),
		errors.Is(err, service.ErrBookingCompleted),
		errors.Is(err, service.ErrNoCleanerAssigned):
		return http.StatusConflict

	// Business rule errors
	case errors.Is(err, service.ErrCleanerInactive):
		return http.StatusForbidden

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
