package postgres

import (
	"context"
	"database/sql"
	"errors"

	"sparkle/internal/domain"
	"sparkle/internal/repository"
)

// CleanerRepository is a PostgreSQL implementation of repository.CleanerRepository.
type CleanerRepository struct {
	q Querier
}

// NewCleanerRepository creates a new PostgreSQL cleaner repository.
func NewCleanerRepository(db *sql.DB) *CleanerRepository {
	return &CleanerRepository{q: db}
}

// Create persists a new cleaner.
func (r *CleanerRepository) Create(ctx context.Context, cleaner *domain.Cleaner) error {
	query := `
		INSERT INTO cleaners (id, name, phone, email, hire_date, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		cleaner.ID,
		cleaner.Name,
		cleaner.Phone,
		cleaner.Email,
		cleaner.HireDate,
		cleaner.Active,
	)

	return err
}

// GetByID retrieves a cleaner by ID.
func (r *CleanerRepository) GetByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	query := `
		SELECT id, name, phone, email, hire_date, active
		FROM cleaners WHERE id = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByPhone retrieves a cleaner by phone number.
func (r *CleanerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Cleaner, error) {
	query := `
		SELECT id, name, phone, email, hire_date, active
		FROM cleaners WHERE phone = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, phone))
}

// GetAll retrieves all cleaners.
func (r *CleanerRepository) GetAll(ctx context.Context) ([]*domain.Cleaner, error) {
	query := `
		SELECT id, name, phone, email, hire_date, active
		FROM cleaners ORDER BY name
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cleaners []*domain.Cleaner
	for rows.Next() {
		var cleaner domain.Cleaner
		if err := rows.Scan(
			&cleaner.ID,
			&cleaner.Name,
			&cleaner.Phone,
			&cleaner.Email,
			&cleaner.HireDate,
			&cleaner.Active,
		); err != nil {
			return nil, err
		}
		cleaners = append(cleaners, &cleaner)
	}

	return cleaners, rows.Err()
}

// SetActive updates the active flag of a cleaner.
func (r *CleanerRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE cleaners SET active = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, active, id)
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

func (r *CleanerRepository) scanOne(row *sql.Row) (*domain.Cleaner, error) {
	var cleaner domain.Cleaner
	err := row.Scan(
		&cleaner.ID,
		&cleaner.Name,
		&cleaner.Phone,
		&cleaner.Email,
		&cleaner.HireDate,
		&cleaner.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &cleaner, nil
}
