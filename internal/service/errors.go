package service

import "errors"

var (
	// ErrInvalidSessionID is returned when a wizard session ID is empty.
	ErrInvalidSessionID = errors.New("invalid session id")

	// ErrUnknownField is returned when updating a wizard field that does not exist.
	ErrUnknownField = errors.New("unknown wizard field")

	// ErrInvalidFieldValue is returned when a wizard field value cannot be decoded.
	ErrInvalidFieldValue = errors.New("invalid wizard field value")

	// ErrInvalidStep is returned when a wizard step is out of the 1..5 range.
	ErrInvalidStep = errors.New("invalid wizard step")

	// ErrServiceRequired is returned when submitting a booking without a service type.
	ErrServiceRequired = errors.New("service type is required")

	// ErrScheduleRequired is returned when submitting without a date and time.
	ErrScheduleRequired = errors.New("booking date and time are required")

	// ErrContactRequired is returned when submitting without contact details.
	ErrContactRequired = errors.New("contact details are required")

	// ErrInvalidRoomCount is returned when a booking has negative room counts.
	ErrInvalidRoomCount = errors.New("room counts must be non-negative")

	// ErrInvalidTimeSlot is returned when a booking time is not a bookable slot.
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotTaken is returned when the requested date and time is already booked.
	ErrSlotTaken = errors.New("time slot already booked")

	// ErrSubmitInProgress is returned when a session's submission is already running.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidCleanerID is returned when a cleaner ID is empty.
	ErrInvalidCleanerID = errors.New("invalid cleaner id")

	// ErrInvalidCustomerID is returned when a customer ID is empty.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrCleanerInactive is returned when assigning an inactive cleaner.
	ErrCleanerInactive = errors.New("cleaner is not active")

	// ErrCleanerBusy is returned when a cleaner is being assigned elsewhere.
	ErrCleanerBusy = errors.New("cleaner is being assigned to another booking")

	// ErrBookingNotConfirmed is returned when completing a booking that is not confirmed.
	ErrBookingNotConfirmed = errors.New("booking not confirmed")

	// ErrBookingNotPending is returned when confirming a booking that is not pending.
	ErrBookingNotPending = errors.New("booking not pending")

	// ErrBookingAlreadyCancelled is returned when cancelling an already cancelled booking.
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// ErrBookingCompleted is returned when mutating a completed booking.
	ErrBookingCompleted = errors.New("booking already completed")

	// ErrNoCleanerAssigned is returned when completing a booking without a cleaner.
	ErrNoCleanerAssigned = errors.New("no cleaner assigned to booking")
)
