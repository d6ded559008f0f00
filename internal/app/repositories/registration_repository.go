package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for user accounts
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Create inserts a new account record
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registration (username, password, email, mobile_no, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		registration.Username,
		registration.Password,
		registration.Email,
		registration.MobileNo,
		registration.Role,
	).Scan(&registration.ID, &registration.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "registration_username_key") {
			return apperrors.ErrUsernameExists
		}
		if dberrors.IsDuplicateConstraintError(err, "registration_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := `
		SELECT id, username, password, email, mobile_no, role, created_at
		FROM registration
		WHERE id = $1
	`

	var registration models.Registration
	err := r.db.QueryRow(ctx, query, id).Scan(
		&registration.ID,
		&registration.Username,
		&registration.Password,
		&registration.Email,
		&registration.MobileNo,
		&registration.Role,
		&registration.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &registration, nil
}

// GetByUsername retrieves an account by username
func (r *RegistrationRepository) GetByUsername(ctx context.Context, username string) (*models.Registration, error) {
	query := `
		SELECT id, username, password, email, mobile_no, role, created_at
		FROM registration
		WHERE username = $1
	`

	var registration models.Registration
	err := r.db.QueryRow(ctx, query, username).Scan(
		&registration.ID,
		&registration.Username,
		&registration.Password,
		&registration.Email,
		&registration.MobileNo,
		&registration.Role,
		&registration.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &registration, nil
}

// UsernameExists checks whether a username is already taken
func (r *RegistrationRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM registration WHERE username = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// Count returns the number of account records
func (r *RegistrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM registration`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting registrations: %w", err)
	}

	return count, nil
}
