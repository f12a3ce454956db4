package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

// newBookingHarness wires a BookingService with the full mock backend.
func newBookingHarness() (*service.BookingService, *bookingHarness) {
	h := &bookingHarness{
		bookingRepo:  NewMockBookingRepository(),
		cleanerRepo:  NewMockCleanerRepository(),
		customerRepo: NewMockCustomerRepository(),
		availability: NewMockAvailabilityStore(),
		locks:        NewMockLockStore(),
		cache:        NewMockCleanerCache(),
	}

	pricing := service.NewPricingService()
	receipts := service.NewReceiptService(pricing, nil)
	h.cleanerService = service.NewCleanerService(h.cleanerRepo, h.bookingRepo, h.cache)

	bookingService := service.NewBookingService(
		h.bookingRepo, h.customerRepo, h.cleanerService, pricing,
		h.availability, h.locks, nil, receipts,
	)
	return bookingService, h
}

type bookingHarness struct {
	bookingRepo    *MockBookingRepository
	cleanerRepo    *MockCleanerRepository
	customerRepo   *MockCustomerRepository
	availability   *MockAvailabilityStore
	locks          *MockLockStore
	cache          *MockCleanerCache
	cleanerService *service.CleanerService
}

func validCreateRequest() service.CreateBookingRequest {
	return service.CreateBookingRequest{
		Service:   domain.ServiceStandard,
		Bedrooms:  2,
		Bathrooms: 1,
		Extras:    []string{"Inside Fridge"},
		Date:      "2026-09-10",
		Time:      "08:00",
		Frequency: domain.FrequencyOneTime,
		FirstName: "Sipho",
		LastName:  "Dlamini",
		Email:     "sipho@example.com",
		Phone:     "+27821112222",
		Address:   domain.Address{Line1: "3 Protea Rd", Suburb: "Newlands", City: "Cape Town"},
	}
}

// activeCleaner seeds the roster with a cleaner hired well past the senior
// tenure threshold.
func (h *bookingHarness) activeCleaner(id string) *domain.Cleaner {
	hired := time.Now().AddDate(-1, 0, 0)
	cleaner := &domain.Cleaner{
		ID:       id,
		Name:     "Zanele M",
		Phone:    "+27835556666",
		Email:    "zanele@example.com",
		HireDate: &hired,
		Active:   true,
	}
	h.cleanerRepo.AddCleaner(cleaner)
	return cleaner
}

// ──────────────────────────────────────────────
// 1. CREATION
// ──────────────────────────────────────────────

func TestBookingCreate_ValidRequest(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()

	booking, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected booking ID to be set")
	}
	if !strings.HasPrefix(booking.Reference, "SP-") || len(booking.Reference) != 11 {
		t.Errorf("malformed reference: %q", booking.Reference)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected pending, got %s", booking.Status)
	}
	if booking.TotalAmount != 380 { // 250 + 40 + 30 + 60
		t.Errorf("total mismatch: got %v, want 380", booking.TotalAmount)
	}
	if booking.CustomerID == "" {
		t.Error("expected a customer to be resolved")
	}
	if !h.availability.SlotTaken("2026-09-10", "08:00") {
		t.Error("expected slot to be reserved")
	}
	if h.bookingRepo.CreateCallCount != 1 {
		t.Errorf("expected Create to be called once, called %d times", h.bookingRepo.CreateCallCount)
	}
}

func TestBookingCreate_ValidationFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(r *service.CreateBookingRequest)
		wantErr error
	}{
		{
			name:    "missing service",
			mutate:  func(r *service.CreateBookingRequest) { r.Service = "" },
			wantErr: service.ErrServiceRequired,
		},
		{
			name:    "unknown service",
			mutate:  func(r *service.CreateBookingRequest) { r.Service = "Carpet" },
			wantErr: service.ErrServiceRequired,
		},
		{
			name:    "negative bedrooms",
			mutate:  func(r *service.CreateBookingRequest) { r.Bedrooms = -2 },
			wantErr: service.ErrInvalidRoomCount,
		},
		{
			name:    "negative bathrooms",
			mutate:  func(r *service.CreateBookingRequest) { r.Bathrooms = -1 },
			wantErr: service.ErrInvalidRoomCount,
		},
		{
			name:    "missing date",
			mutate:  func(r *service.CreateBookingRequest) { r.Date = "" },
			wantErr: service.ErrScheduleRequired,
		},
		{
			name:    "time outside the grid",
			mutate:  func(r *service.CreateBookingRequest) { r.Time = "14:00" },
			wantErr: service.ErrInvalidTimeSlot,
		},
		{
			name:    "missing first name",
			mutate:  func(r *service.CreateBookingRequest) { r.FirstName = "" },
			wantErr: service.ErrContactRequired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings, h := newBookingHarness()
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := bookings.Create(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
			if h.bookingRepo.CountBookings() != 0 {
				t.Error("rejected request must not persist a booking")
			}
		})
	}
}

func TestBookingCreate_SlotAlreadyTaken(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.availability.MarkTaken("2026-09-10", "08:00")

	_, err := bookings.Create(context.Background(), validCreateRequest())
	if !errors.Is(err, service.ErrSlotTaken) {
		t.Errorf("got %v, want ErrSlotTaken", err)
	}
	if h.bookingRepo.CountBookings() != 0 {
		t.Error("taken slot must not produce a booking")
	}
}

func TestBookingCreate_RepoFailureReleasesSlot(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.bookingRepo.CreateError = ErrMockDBConstraint

	_, err := bookings.Create(context.Background(), validCreateRequest())
	if !errors.Is(err, ErrMockDBConstraint) {
		t.Fatalf("got %v, want injected create error", err)
	}
	if h.availability.SlotTaken("2026-09-10", "08:00") {
		t.Error("failed create must release the reserved slot")
	}
}

func TestBookingCreate_PaymentReferenceIsIdempotent(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()

	req := validCreateRequest()
	req.PaymentReference = "pay_abc123"

	first, err := bookings.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Retry with the same payment reference, different slot.
	retry := req
	retry.Time = "10:00"
	second, err := bookings.Create(context.Background(), retry)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("retry created a new booking: %s vs %s", second.ID, first.ID)
	}
	if h.bookingRepo.CountBookings() != 1 {
		t.Errorf("expected 1 booking, got %d", h.bookingRepo.CountBookings())
	}
	if h.availability.SlotTaken("2026-09-10", "10:00") {
		t.Error("retry must not reserve a second slot")
	}
}

func TestBookingCreate_ReusesCustomerByEmail(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()

	req1 := validCreateRequest()
	req2 := validCreateRequest()
	req2.Time = "11:00"

	first, err := bookings.Create(context.Background(), req1)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := bookings.Create(context.Background(), req2)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if first.CustomerID != second.CustomerID {
		t.Error("expected the same customer record for the same email")
	}
	if h.customerRepo.CountCustomers() != 1 {
		t.Errorf("expected 1 customer, got %d", h.customerRepo.CountCustomers())
	}
}

// ──────────────────────────────────────────────
// 2. CONFIRM / ASSIGN
// ──────────────────────────────────────────────

func TestBookingConfirm_PendingBecomesConfirmed(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	confirmed, err := bookings.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != domain.BookingStatusConfirmed {
		t.Errorf("got %s, want CONFIRMED", confirmed.Status)
	}
	if stored := h.bookingRepo.GetBooking(created.ID); stored.Status != domain.BookingStatusConfirmed {
		t.Errorf("stored status %s, want CONFIRMED", stored.Status)
	}
}

func TestBookingConfirm_OnlyFromPending(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.bookingRepo.AddBooking(&domain.Booking{
		ID:     "bk-1",
		Status: domain.BookingStatusConfirmed,
	})

	_, err := bookings.Confirm(context.Background(), "bk-1")
	if !errors.Is(err, service.ErrBookingNotPending) {
		t.Errorf("got %v, want ErrBookingNotPending", err)
	}
}

func TestBookingAssign_ActiveCleaner(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.activeCleaner("cl-1")

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := bookings.Confirm(context.Background(), created.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	assigned, err := bookings.AssignCleaner(context.Background(), created.ID, "cl-1")
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assigned.AssignedCleanerID != "cl-1" {
		t.Errorf("got cleaner %q, want cl-1", assigned.AssignedCleanerID)
	}
	// Assignment lock is released after the update lands.
	if h.locks.IsLocked("lock:cleaner:cl-1") {
		t.Error("cleaner lock should be released after assignment")
	}
}

func TestBookingAssign_InactiveCleanerRejected(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	cleaner := h.activeCleaner("cl-1")
	cleaner.Active = false

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = bookings.AssignCleaner(context.Background(), created.ID, "cl-1")
	if !errors.Is(err, service.ErrCleanerInactive) {
		t.Errorf("got %v, want ErrCleanerInactive", err)
	}
}

func TestBookingAssign_BusyCleanerRejected(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.activeCleaner("cl-1")
	h.locks.ForceAcquireFailure = true

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = bookings.AssignCleaner(context.Background(), created.ID, "cl-1")
	if !errors.Is(err, service.ErrCleanerBusy) {
		t.Errorf("got %v, want ErrCleanerBusy", err)
	}
}

// ──────────────────────────────────────────────
// 3. COMPLETE
// ──────────────────────────────────────────────

func TestBookingComplete_GeneratesReceipt(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.activeCleaner("cl-1")

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := bookings.Confirm(context.Background(), created.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := bookings.AssignCleaner(context.Background(), created.ID, "cl-1"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	receipt, err := bookings.Complete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if receipt.BookingID != created.ID {
		t.Errorf("receipt booking mismatch: %s", receipt.BookingID)
	}
	if receipt.TotalAmount != 380 {
		t.Errorf("receipt total: got %v, want 380", receipt.TotalAmount)
	}
	// One year of tenure puts the cleaner on the senior rate.
	if receipt.CleanerEarnings != 266 { // round(380 * 0.70)
		t.Errorf("cleaner earnings: got %v, want 266", receipt.CleanerEarnings)
	}
	if receipt.CleanerEarnings+receipt.CompanyEarnings != receipt.TotalAmount {
		t.Errorf("earnings do not sum to total: %v + %v != %v",
			receipt.CleanerEarnings, receipt.CompanyEarnings, receipt.TotalAmount)
	}
	if stored := h.bookingRepo.GetBooking(created.ID); stored.Status != domain.BookingStatusCompleted {
		t.Errorf("stored status %s, want COMPLETED", stored.Status)
	}
}

func TestBookingComplete_RequiresConfirmedAndAssigned(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.activeCleaner("cl-1")

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Still pending.
	if _, err := bookings.Complete(context.Background(), created.ID); !errors.Is(err, service.ErrBookingNotConfirmed) {
		t.Errorf("pending: got %v, want ErrBookingNotConfirmed", err)
	}

	// Confirmed but no cleaner.
	if _, err := bookings.Confirm(context.Background(), created.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := bookings.Complete(context.Background(), created.ID); !errors.Is(err, service.ErrNoCleanerAssigned) {
		t.Errorf("unassigned: got %v, want ErrNoCleanerAssigned", err)
	}
}

// ──────────────────────────────────────────────
// 4. CANCEL
// ──────────────────────────────────────────────

func TestBookingCancel_FreesSlot(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()

	created, err := bookings.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cancelled, err := bookings.Cancel(context.Background(), created.ID, "customer request")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.BookingStatusCancelled {
		t.Errorf("got %s, want CANCELLED", cancelled.Status)
	}
	if h.availability.SlotTaken("2026-09-10", "08:00") {
		t.Error("expected slot to be released on cancel")
	}
}

func TestBookingCancel_TerminalStatesRejected(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.bookingRepo.AddBooking(&domain.Booking{ID: "bk-done", Status: domain.BookingStatusCompleted})
	h.bookingRepo.AddBooking(&domain.Booking{ID: "bk-gone", Status: domain.BookingStatusCancelled})

	if _, err := bookings.Cancel(context.Background(), "bk-done", ""); !errors.Is(err, service.ErrBookingCompleted) {
		t.Errorf("completed: got %v, want ErrBookingCompleted", err)
	}
	if _, err := bookings.Cancel(context.Background(), "bk-gone", ""); !errors.Is(err, service.ErrBookingAlreadyCancelled) {
		t.Errorf("cancelled: got %v, want ErrBookingAlreadyCancelled", err)
	}
}

// ──────────────────────────────────────────────
// 5. EARNINGS READ
// ──────────────────────────────────────────────

func TestBookingEarnings_RecomputedAtReadTime(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.activeCleaner("cl-1")
	h.bookingRepo.AddBooking(&domain.Booking{
		ID:                "bk-1",
		Status:            domain.BookingStatusCompleted,
		AssignedCleanerID: "cl-1",
		TotalAmount:       1000,
		ServiceFee:        100,
	})

	split, err := bookings.Earnings(context.Background(), "bk-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.Rate != 0.70 {
		t.Errorf("rate: got %v, want 0.70", split.Rate)
	}
	if split.CleanerEarnings != 630 { // round(900 * 0.70)
		t.Errorf("cleaner earnings: got %v, want 630", split.CleanerEarnings)
	}
	if split.CleanerEarnings+split.CompanyEarnings != split.TotalAmount {
		t.Error("shares must sum to the booking total")
	}
}

func TestBookingEarnings_RequiresAssignedCleaner(t *testing.T) {
	t.Parallel()

	bookings, h := newBookingHarness()
	h.bookingRepo.AddBooking(&domain.Booking{
		ID:          "bk-1",
		Status:      domain.BookingStatusCompleted,
		TotalAmount: 500,
	})

	_, err := bookings.Earnings(context.Background(), "bk-1")
	if !errors.Is(err, service.ErrNoCleanerAssigned) {
		t.Errorf("got %v, want ErrNoCleanerAssigned", err)
	}
}
