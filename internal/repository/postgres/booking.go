package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"sparkle/internal/domain"
	"sparkle/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `
	id, reference, customer_id, service, bedrooms, bathrooms, extras, notes,
	booking_date, booking_time, frequency, first_name, last_name, email, phone,
	address_line1, address_suburb, address_city, total_amount, service_fee,
	status, assigned_cleaner_id, payment_reference, created_at, cancelled_at, completed_at
`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			id, reference, customer_id, service, bedrooms, bathrooms, extras, notes,
			booking_date, booking_time, frequency, first_name, last_name, email, phone,
			address_line1, address_suburb, address_city, total_amount, service_fee,
			status, assigned_cleaner_id, payment_reference, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.Reference,
		booking.CustomerID,
		booking.Service,
		booking.Bedrooms,
		booking.Bathrooms,
		pq.Array(booking.Extras),
		booking.Notes,
		booking.Date,
		booking.Time,
		booking.Frequency,
		booking.FirstName,
		booking.LastName,
		booking.Email,
		booking.Phone,
		booking.Address.Line1,
		booking.Address.Suburb,
		booking.Address.City,
		booking.TotalAmount,
		booking.ServiceFee,
		booking.Status,
		nullString(booking.AssignedCleanerID),
		nullString(booking.PaymentReference),
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByReference retrieves a booking by its human-readable reference.
func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, reference))
}

// GetByPaymentReference retrieves a booking by its payment reference.
// Returns nil if no booking exists with the given reference.
func (r *BookingRepository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_reference = $1`
	booking, err := r.scanOne(r.q.QueryRowContext(ctx, query, reference))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return booking, err
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// GetByCleanerAndStatus retrieves a cleaner's bookings in a given status.
func (r *BookingRepository) GetByCleanerAndStatus(ctx context.Context, cleanerID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE assigned_cleaner_id = $1 AND status = $2
		ORDER BY booking_date, booking_time
	`

	rows, err := r.q.QueryContext(ctx, query, cleanerID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// UpdateStatus updates the status of a booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	return r.exec(ctx, query, status, id)
}

// AssignCleaner sets the assigned cleaner for a booking.
func (r *BookingRepository) AssignCleaner(ctx context.Context, id, cleanerID string) error {
	query := `UPDATE bookings SET assigned_cleaner_id = $1 WHERE id = $2`
	return r.exec(ctx, query, cleanerID, id)
}

// MarkCancelled marks a booking cancelled with the cancellation time.
func (r *BookingRepository) MarkCancelled(ctx context.Context, id string) error {
	query := `UPDATE bookings SET status = $1, cancelled_at = $2 WHERE id = $3`
	return r.exec(ctx, query, domain.BookingStatusCancelled, time.Now(), id)
}

// MarkCompleted marks a booking completed with the completion time.
func (r *BookingRepository) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE bookings SET status = $1, completed_at = $2 WHERE id = $3`
	return r.exec(ctx, query, domain.BookingStatusCompleted, time.Now(), id)
}

func (r *BookingRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *BookingRepository) scanOne(row *sql.Row) (*domain.Booking, error) {
	booking, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) scanAll(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// scanBooking scans one bookings row using the provided scan function.
func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		cleanerID   sql.NullString
		payRef      sql.NullString
		cancelledAt sql.NullTime
		completedAt sql.NullTime
	)

	err := scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerID,
		&booking.Service,
		&booking.Bedrooms,
		&booking.Bathrooms,
		pq.Array(&booking.Extras),
		&booking.Notes,
		&booking.Date,
		&booking.Time,
		&booking.Frequency,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.Phone,
		&booking.Address.Line1,
		&booking.Address.Suburb,
		&booking.Address.City,
		&booking.TotalAmount,
		&booking.ServiceFee,
		&booking.Status,
		&cleanerID,
		&payRef,
		&booking.CreatedAt,
		&cancelledAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.AssignedCleanerID = cleanerID.String
	booking.PaymentReference = payRef.String
	if cancelledAt.Valid {
		booking.CancelledAt = cancelledAt.Time
	}
	if completedAt.Valid {
		booking.CompletedAt = completedAt.Time
	}

	return &booking, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
