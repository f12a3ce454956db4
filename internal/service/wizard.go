package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sparkle/internal/domain"
	"sparkle/internal/redis"
)

// ServiceSelectPath is the entry point of the booking flow and the target of
// every guard redirect.
const ServiceSelectPath = "/booking/service/select"

const submitLockTTL = 30 * time.Second

// WizardService drives the five-step booking flow. The URL is the source of
// truth for which step is displayed; the stored session state is
// re-synchronized with it on every mount. All gating is client-flow comfort,
// not a security boundary: the real validation happens in Submit.
type WizardService struct {
	store          redis.WizardStoreInterface
	locks          redis.LockStoreInterface
	pricingService *PricingService
	bookingService *BookingService
}

// NewWizardService creates a new WizardService.
func NewWizardService(
	store redis.WizardStoreInterface,
	locks redis.LockStoreInterface,
	pricingService *PricingService,
	bookingService *BookingService,
) *WizardService {
	return &WizardService{
		store:          store,
		locks:          locks,
		pricingService: pricingService,
		bookingService: bookingService,
	}
}

// MountResult is the outcome of mounting a step page. Exactly one of State
// and Redirect is set: a Redirect means the step must not render and the
// client should navigate to the given path.
type MountResult struct {
	State    *domain.WizardState
	Redirect string
}

// Mount synchronizes session state with a freshly mounted step page.
// The service slug from the URL wins over any stale stored service. A step
// past service selection with no derivable and no stored service redirects
// back to the entry point. A store failure is returned as an error, never a
// redirect: bouncing a customer with valid in-progress state because the
// state had not loaded yet is exactly the race this guards against.
func (s *WizardService) Mount(ctx context.Context, sessionID, slug string, step int) (*MountResult, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if step < domain.StepServiceSelect || step > domain.StepReview {
		return nil, ErrInvalidStep
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load wizard state: %w", err)
	}
	if state == nil {
		state = domain.NewWizardState()
	}

	serviceFromSlug, known := domain.ServiceTypeFromSlug(slug)

	if step > domain.StepServiceSelect && !known && !state.Service.Valid() {
		return &MountResult{Redirect: ServiceSelectPath}, nil
	}

	if known && serviceFromSlug != state.Service {
		state.Service = serviceFromSlug
	}
	state.CurrentStep = step

	if err := s.store.Set(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("save wizard state: %w", err)
	}

	return &MountResult{State: state}, nil
}

// State returns the session's current state together with a live quote.
// A session with no stored state reads back as fresh defaults.
func (s *WizardService) State(ctx context.Context, sessionID string) (*domain.WizardState, PriceBreakdown, error) {
	if sessionID == "" {
		return nil, PriceBreakdown{}, ErrInvalidSessionID
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, PriceBreakdown{}, fmt.Errorf("load wizard state: %w", err)
	}
	if state == nil {
		state = domain.NewWizardState()
	}

	quote := s.pricingService.Quote(state.Service, state.Bedrooms, state.Bathrooms, state.Extras)
	return state, quote, nil
}

// UpdateField mutates exactly one named field of the session state and
// persists the whole record. Sibling fields are never touched. The value is
// raw JSON decoded into the field's own type.
func (s *WizardService) UpdateField(ctx context.Context, sessionID, field string, value json.RawMessage) (*domain.WizardState, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load wizard state: %w", err)
	}
	if state == nil {
		state = domain.NewWizardState()
	}

	if err := applyField(state, field, value); err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("save wizard state: %w", err)
	}

	return state, nil
}

// applyField decodes value into the single named field of state.
func applyField(state *domain.WizardState, field string, value json.RawMessage) error {
	var dest any

	switch field {
	case "current_step":
		dest = &state.CurrentStep
	case "service":
		dest = &state.Service
	case "bedrooms":
		dest = &state.Bedrooms
	case "bathrooms":
		dest = &state.Bathrooms
	case "extras":
		dest = &state.Extras
	case "notes":
		dest = &state.Notes
	case "date":
		dest = &state.Date
	case "time":
		dest = &state.Time
	case "frequency":
		dest = &state.Frequency
	case "first_name":
		dest = &state.FirstName
	case "last_name":
		dest = &state.LastName
	case "email":
		dest = &state.Email
	case "phone":
		dest = &state.Phone
	case "address":
		dest = &state.Address
	case "payment_reference":
		dest = &state.PaymentReference
	default:
		return ErrUnknownField
	}

	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
	}
	return nil
}

// ResumePath maps stored state to the URL of the step the customer should
// land on when re-entering the flow at the top-level booking path. Any
// out-of-range step, or a missing service past step one, falls back to
// service selection.
func ResumePath(state *domain.WizardState) string {
	if state == nil || !state.Service.Valid() {
		return ServiceSelectPath
	}

	slug := state.Service.Slug()
	switch state.CurrentStep {
	case domain.StepDetails:
		return fmt.Sprintf("/booking/service/%s/details", slug)
	case domain.StepSchedule:
		return fmt.Sprintf("/booking/service/%s/schedule", slug)
	case domain.StepContact:
		return fmt.Sprintf("/booking/service/%s/contact", slug)
	case domain.StepReview:
		return fmt.Sprintf("/booking/service/%s/review", slug)
	default:
		return ServiceSelectPath
	}
}

// Reset discards the session's state entirely.
func (s *WizardService) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return s.store.Delete(ctx, sessionID)
}

// Submit validates the collected state, creates the booking, and resets the
// session. The total handed to the booking is computed by the same pricing
// function that rendered the live quote. Concurrent submissions from the
// same session are serialized with a lock; the loser gets
// ErrSubmitInProgress instead of a duplicate booking.
func (s *WizardService) Submit(ctx context.Context, sessionID string) (*domain.Booking, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load wizard state: %w", err)
	}
	if state == nil || !state.Service.Valid() {
		return nil, ErrServiceRequired
	}

	ok, err := s.locks.AcquireSubmitLock(ctx, sessionID, submitLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !ok {
		return nil, ErrSubmitInProgress
	}
	defer func() { _ = s.locks.ReleaseSubmitLock(ctx, sessionID) }()

	booking, err := s.bookingService.Create(ctx, CreateBookingRequest{
		Service:          state.Service,
		Bedrooms:         state.Bedrooms,
		Bathrooms:        state.Bathrooms,
		Extras:           state.Extras,
		Notes:            state.Notes,
		Date:             state.Date,
		Time:             state.Time,
		Frequency:        state.Frequency,
		FirstName:        state.FirstName,
		LastName:         state.LastName,
		Email:            state.Email,
		Phone:            state.Phone,
		Address:          state.Address,
		PaymentReference: state.PaymentReference,
	})
	if err != nil {
		return nil, err
	}

	// The flow is over; the next visit starts fresh.
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return booking, fmt.Errorf("reset wizard state: %w", err)
	}

	return booking, nil
}
