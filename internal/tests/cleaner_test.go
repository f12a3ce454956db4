package tests

import (
	"context"
	"testing"
	"time"

	"sparkle/internal/domain"
	"sparkle/internal/service"
)

func newCleanerHarness() (*service.CleanerService, *MockCleanerRepository, *MockBookingRepository, *MockCleanerCache) {
	cleanerRepo := NewMockCleanerRepository()
	bookingRepo := NewMockBookingRepository()
	cache := NewMockCleanerCache()
	return service.NewCleanerService(cleanerRepo, bookingRepo, cache), cleanerRepo, bookingRepo, cache
}

func TestCleanerRegister_DefaultsToActive(t *testing.T) {
	t.Parallel()

	cleaners, cleanerRepo, _, _ := newCleanerHarness()

	hired := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	cleaner, err := cleaners.Register(context.Background(), service.RegisterCleanerRequest{
		Name:     "Zanele M",
		Phone:    "+27835556666",
		Email:    "zanele@example.com",
		HireDate: &hired,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleaner.ID == "" {
		t.Error("expected cleaner ID to be set")
	}
	if !cleaner.Active {
		t.Error("new cleaner should start active")
	}
	if cleanerRepo.CreateCallCount != 1 {
		t.Errorf("expected Create to be called once, called %d times", cleanerRepo.CreateCallCount)
	}
}

func TestCleanerGet_PopulatesAndServesCache(t *testing.T) {
	t.Parallel()

	cleaners, cleanerRepo, _, cache := newCleanerHarness()
	cleanerRepo.AddCleaner(&domain.Cleaner{ID: "cl-1", Name: "Zanele M", Phone: "1", Active: true})

	// First read misses the cache and fills it.
	first, err := cleaners.GetCleaner(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.HasEntry("cl-1") {
		t.Error("expected cleaner to be cached after the first read")
	}

	// Second read is served from cache; poison the repo to prove it.
	cleanerRepo.cleaners = nil
	second, err := cleaners.GetCleaner(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("unexpected error on cached read: %v", err)
	}
	if second.Name != first.Name {
		t.Errorf("cached cleaner differs: %s vs %s", second.Name, first.Name)
	}
}

func TestCleanerGet_CacheFailureFallsThrough(t *testing.T) {
	t.Parallel()

	cleaners, cleanerRepo, _, cache := newCleanerHarness()
	cleanerRepo.AddCleaner(&domain.Cleaner{ID: "cl-1", Name: "Zanele M", Active: true})
	cache.GetError = ErrMockTimeout

	cleaner, err := cleaners.GetCleaner(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("cache failure must fall through to the repository: %v", err)
	}
	if cleaner.ID != "cl-1" {
		t.Errorf("got cleaner %s, want cl-1", cleaner.ID)
	}
}

func TestCleanerSetActive_InvalidatesCache(t *testing.T) {
	t.Parallel()

	cleaners, cleanerRepo, _, cache := newCleanerHarness()
	cleanerRepo.AddCleaner(&domain.Cleaner{ID: "cl-1", Active: true})

	// Warm the cache.
	if _, err := cleaners.GetCleaner(context.Background(), "cl-1"); err != nil {
		t.Fatalf("warm read failed: %v", err)
	}

	if err := cleaners.SetActive(context.Background(), "cl-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.HasEntry("cl-1") {
		t.Error("expected cached copy to be invalidated")
	}
}

func TestCleanerPayouts_CompletedBookingsOnly(t *testing.T) {
	t.Parallel()

	cleaners, cleanerRepo, bookingRepo, _ := newCleanerHarness()

	hired := time.Now().AddDate(-1, 0, 0) // Senior rate.
	cleanerRepo.AddCleaner(&domain.Cleaner{ID: "cl-1", Name: "Zanele M", HireDate: &hired, Active: true})

	bookingRepo.AddBooking(&domain.Booking{
		ID: "bk-1", Reference: "SP-AAAA1111", AssignedCleanerID: "cl-1",
		Status: domain.BookingStatusCompleted, TotalAmount: 1000, ServiceFee: 100,
	})
	bookingRepo.AddBooking(&domain.Booking{
		ID: "bk-2", Reference: "SP-BBBB2222", AssignedCleanerID: "cl-1",
		Status: domain.BookingStatusCompleted, TotalAmount: 380,
	})
	// Not yet completed: excluded from the payout.
	bookingRepo.AddBooking(&domain.Booking{
		ID: "bk-3", AssignedCleanerID: "cl-1",
		Status: domain.BookingStatusConfirmed, TotalAmount: 500,
	})
	// Someone else's job.
	bookingRepo.AddBooking(&domain.Booking{
		ID: "bk-4", AssignedCleanerID: "cl-2",
		Status: domain.BookingStatusCompleted, TotalAmount: 700,
	})

	summary, err := cleaners.Payouts(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Rate != 0.70 {
		t.Errorf("rate: got %v, want 0.70", summary.Rate)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("expected 2 payout lines, got %d", len(summary.Lines))
	}
	want := 630.0 + 266.0 // round(900*0.7) + round(380*0.7)
	if summary.TotalEarnings != want {
		t.Errorf("total earnings: got %v, want %v", summary.TotalEarnings, want)
	}
}
