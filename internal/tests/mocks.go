package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"sparkle/internal/domain"
	"sparkle/internal/redis"
	"sparkle/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	UpdateStatusError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.Reference == reference {
			copy := *b
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockBookingRepository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.PaymentReference == reference {
			copy := *b
			return &copy, nil
		}
	}
	return nil, nil // Not found, but not an error for idempotency check
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) GetByCleanerAndStatus(ctx context.Context, cleanerID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.AssignedCleanerID == cleanerID && b.Status == status {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	return nil
}

func (m *MockBookingRepository) AssignCleaner(ctx context.Context, id, cleanerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.AssignedCleanerID = cleanerID
	return nil
}

func (m *MockBookingRepository) MarkCancelled(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()
	return nil
}

func (m *MockBookingRepository) MarkCompleted(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = domain.BookingStatusCompleted
	booking.CompletedAt = time.Now()
	return nil
}

// GetBooking returns the booking by ID (for test assertions).
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// CountBookings returns the number of bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK CLEANER REPOSITORY
// ──────────────────────────────────────────────

// MockCleanerRepository is a mock implementation of CleanerRepository.
type MockCleanerRepository struct {
	mu       sync.RWMutex
	cleaners map[string]*domain.Cleaner

	// Counters
	CreateCallCount    int32
	SetActiveCallCount int32

	// Error injection
	CreateError error
}

// NewMockCleanerRepository creates a new mock cleaner repository.
func NewMockCleanerRepository() *MockCleanerRepository {
	return &MockCleanerRepository{
		cleaners: make(map[string]*domain.Cleaner),
	}
}

// AddCleaner adds a cleaner to the mock repository.
func (m *MockCleanerRepository) AddCleaner(cleaner *domain.Cleaner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleaners[cleaner.ID] = cleaner
}

func (m *MockCleanerRepository) Create(ctx context.Context, cleaner *domain.Cleaner) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleaners[cleaner.ID] = cleaner
	return nil
}

func (m *MockCleanerRepository) GetByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cleaner, ok := m.cleaners[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *cleaner
	return &copy, nil
}

func (m *MockCleanerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Cleaner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cleaners {
		if c.Phone == phone {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCleanerRepository) GetAll(ctx context.Context) ([]*domain.Cleaner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Cleaner, 0, len(m.cleaners))
	for _, c := range m.cleaners {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCleanerRepository) SetActive(ctx context.Context, id string, active bool) error {
	atomic.AddInt32(&m.SetActiveCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	cleaner, ok := m.cleaners[id]
	if !ok {
		return repository.ErrNotFound
	}
	cleaner.Active = active
	return nil
}

// ──────────────────────────────────────────────
// MOCK CUSTOMER REPOSITORY
// ──────────────────────────────────────────────

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	// Counters
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockCustomerRepository creates a new mock customer repository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	customer, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *customer
	return &copy, nil
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.Email == email {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

// CountCustomers returns the number of customers.
func (m *MockCustomerRepository) CountCustomers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.customers)
}

// ──────────────────────────────────────────────
// MOCK WIZARD STORE
// ──────────────────────────────────────────────

// MockWizardStore is a mock implementation of WizardStoreInterface.
type MockWizardStore struct {
	mu     sync.RWMutex
	states map[string]*domain.WizardState

	// Counters
	GetCallCount    int32
	SetCallCount    int32
	DeleteCallCount int32

	// Error injection
	GetError    error
	SetError    error
	DeleteError error
}

var _ redis.WizardStoreInterface = (*MockWizardStore)(nil)

// NewMockWizardStore creates a new mock wizard store.
func NewMockWizardStore() *MockWizardStore {
	return &MockWizardStore{
		states: make(map[string]*domain.WizardState),
	}
}

// PutState seeds a session's state (for test setup).
func (m *MockWizardStore) PutState(sessionID string, state *domain.WizardState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionID] = state
}

func (m *MockWizardStore) Get(ctx context.Context, sessionID string) (*domain.WizardState, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[sessionID]
	if !ok {
		return nil, nil // Absent session is not an error
	}
	copy := *state
	return &copy, nil
}

func (m *MockWizardStore) Set(ctx context.Context, sessionID string, state *domain.WizardState) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *state
	m.states[sessionID] = &copy
	return nil
}

func (m *MockWizardStore) Delete(ctx context.Context, sessionID string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
	return nil
}

// GetState returns the stored state for assertions.
func (m *MockWizardStore) GetState(sessionID string) *domain.WizardState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[sessionID]
}

// HasState checks whether a session has stored state.
func (m *MockWizardStore) HasState(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.states[sessionID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK AVAILABILITY STORE
// ──────────────────────────────────────────────

// MockAvailabilityStore is a mock implementation of AvailabilityStoreInterface.
type MockAvailabilityStore struct {
	mu    sync.Mutex
	taken map[string]map[string]bool // date -> slot -> taken

	// Counters
	ReserveCallCount int32
	ReleaseCallCount int32

	// Error injection
	ReserveError error
	TakenError   error
}

var _ redis.AvailabilityStoreInterface = (*MockAvailabilityStore)(nil)

// NewMockAvailabilityStore creates a new mock availability store.
func NewMockAvailabilityStore() *MockAvailabilityStore {
	return &MockAvailabilityStore{
		taken: make(map[string]map[string]bool),
	}
}

// MarkTaken pre-reserves a slot (for test setup).
func (m *MockAvailabilityStore) MarkTaken(date, slot string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken[date] == nil {
		m.taken[date] = make(map[string]bool)
	}
	m.taken[date][slot] = true
}

func (m *MockAvailabilityStore) Reserve(ctx context.Context, date, slot string) (bool, error) {
	atomic.AddInt32(&m.ReserveCallCount, 1)
	if m.ReserveError != nil {
		return false, m.ReserveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken[date] == nil {
		m.taken[date] = make(map[string]bool)
	}
	if m.taken[date][slot] {
		return false, nil
	}
	m.taken[date][slot] = true
	return true, nil
}

func (m *MockAvailabilityStore) Release(ctx context.Context, date, slot string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken[date] != nil {
		delete(m.taken[date], slot)
	}
	return nil
}

func (m *MockAvailabilityStore) Taken(ctx context.Context, date string) ([]string, error) {
	if m.TakenError != nil {
		return nil, m.TakenError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, 0)
	for slot, taken := range m.taken[date] {
		if taken {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (m *MockAvailabilityStore) IsTaken(ctx context.Context, date, slot string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.taken[date] != nil && m.taken[date][slot], nil
}

// SlotTaken checks a reservation without going through the interface (for
// test assertions).
func (m *MockAvailabilityStore) SlotTaken(date, slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.taken[date] != nil && m.taken[date][slot]
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]time.Time

	// Counters
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// Force lock failure
	ForceAcquireFailure bool
}

var _ redis.LockStoreInterface = (*MockLockStore)(nil)

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]time.Time),
	}
}

func (m *MockLockStore) acquire(key string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if expiry, exists := m.locks[key]; exists {
		if time.Now().Before(expiry) {
			return false, nil // Lock still held.
		}
	}

	m.locks[key] = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) release(key string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	return nil
}

func (m *MockLockStore) AcquireCleanerLock(ctx context.Context, cleanerID string, ttl time.Duration) (bool, error) {
	return m.acquire("lock:cleaner:"+cleanerID, ttl)
}

func (m *MockLockStore) ReleaseCleanerLock(ctx context.Context, cleanerID string) error {
	return m.release("lock:cleaner:" + cleanerID)
}

func (m *MockLockStore) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return m.acquire("lock:submit:"+sessionID, ttl)
}

func (m *MockLockStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return m.release("lock:submit:" + sessionID)
}

// IsLocked checks if a key is locked (for test assertions).
func (m *MockLockStore) IsLocked(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, exists := m.locks[key]
	return exists && time.Now().Before(expiry)
}

// ──────────────────────────────────────────────
// MOCK CLEANER CACHE
// ──────────────────────────────────────────────

// MockCleanerCache is a mock implementation of CleanerCacheInterface.
type MockCleanerCache struct {
	mu      sync.RWMutex
	entries map[string]*redis.CachedCleaner

	// Counters
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError error
}

var _ redis.CleanerCacheInterface = (*MockCleanerCache)(nil)

// NewMockCleanerCache creates a new mock cleaner cache.
func NewMockCleanerCache() *MockCleanerCache {
	return &MockCleanerCache{
		entries: make(map[string]*redis.CachedCleaner),
	}
}

func (m *MockCleanerCache) GetCleaner(ctx context.Context, cleanerID string) (*redis.CachedCleaner, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[cleanerID]
	if !ok {
		return nil, nil // Cache miss
	}
	copy := *entry
	return &copy, nil
}

func (m *MockCleanerCache) SetCleaner(ctx context.Context, cleaner *redis.CachedCleaner) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *cleaner
	m.entries[cleaner.ID] = &copy
	return nil
}

func (m *MockCleanerCache) InvalidateCleaner(ctx context.Context, cleanerID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, cleanerID)
	return nil
}

// HasEntry checks whether a cleaner is cached.
func (m *MockCleanerCache) HasEntry(cleanerID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[cleanerID]
	return ok
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
