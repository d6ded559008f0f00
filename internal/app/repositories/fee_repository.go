package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/dberrors"
)

// FeeRepository handles database operations for fee records
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// Create raises a new fee charge against an admission
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fee (admission_id, fee_category, amount, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.AdmissionID,
		fee.FeeCategory,
		fee.Amount,
		fee.PaymentMethod,
		fee.PaymentStatus,
	).Scan(&fee.ID, &fee.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAdmissionNotFound
		}
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByID retrieves a fee record with the applicant name
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `
		SELECT f.id, f.admission_id, f.fee_category, f.amount, f.payment_method,
			f.payment_status, f.payment_date, f.created_at, a.student_name
		FROM fee f
		JOIN admission a ON a.id = f.admission_id
		WHERE f.id = $1
	`

	var fee models.Fee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fee.ID,
		&fee.AdmissionID,
		&fee.FeeCategory,
		&fee.Amount,
		&fee.PaymentMethod,
		&fee.PaymentStatus,
		&fee.PaymentDate,
		&fee.CreatedAt,
		&fee.StudentName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return &fee, nil
}

// GetByAdmissionID retrieves the fee records of an admission
func (r *FeeRepository) GetByAdmissionID(ctx context.Context, admissionID int64) ([]*models.Fee, error) {
	query := `
		SELECT f.id, f.admission_id, f.fee_category, f.amount, f.payment_method,
			f.payment_status, f.payment_date, f.created_at, a.student_name
		FROM fee f
		JOIN admission a ON a.id = f.admission_id
		WHERE f.admission_id = $1
		ORDER BY f.created_at DESC, f.id DESC
	`

	rows, err := r.db.Query(ctx, query, admissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID,
			&fee.AdmissionID,
			&fee.FeeCategory,
			&fee.Amount,
			&fee.PaymentMethod,
			&fee.PaymentStatus,
			&fee.PaymentDate,
			&fee.CreatedAt,
			&fee.StudentName,
		); err != nil {
			return nil, err
		}
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// RecordPayment settles a fee record with the outcome of a payment attempt
func (r *FeeRepository) RecordPayment(ctx context.Context, id int64, method string, status models.PaymentStatus, paidAt time.Time) error {
	query := `
		UPDATE fee
		SET payment_method = $1, payment_status = $2, payment_date = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, method, status, paidAt, id)
	if err != nil {
		return fmt.Errorf("error recording payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
