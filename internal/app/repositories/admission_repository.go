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

// AdmissionRepository handles database operations for admission applications
type AdmissionRepository struct {
	db *pgxpool.Pool
}

// NewAdmissionRepository creates a new admission repository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
	}
}

const admissionColumns = `
	a.id, a.registration_id, a.course_id, a.student_name, a.email, a.date_of_birth,
	a.father_name, a.mother_name, a.mobile_no, a.aadhar_no, a.address, a.state,
	a.district, a.pincode, a.gender, a.previous_cgpa, a.obtain_marks, a.total_marks,
	a.percentage, a.passing_year, a.photo_path, a.id_proof_path, a.sign_path,
	a.marklist_path, a.status, a.created_at, c.course_name`

func scanAdmission(row pgx.Row) (*models.Admission, error) {
	var admission models.Admission
	err := row.Scan(
		&admission.ID,
		&admission.RegistrationID,
		&admission.CourseID,
		&admission.StudentName,
		&admission.Email,
		&admission.DateOfBirth,
		&admission.FatherName,
		&admission.MotherName,
		&admission.MobileNo,
		&admission.AadharNo,
		&admission.Address,
		&admission.State,
		&admission.District,
		&admission.Pincode,
		&admission.Gender,
		&admission.PreviousCGPA,
		&admission.ObtainMarks,
		&admission.TotalMarks,
		&admission.Percentage,
		&admission.PassingYear,
		&admission.PhotoPath,
		&admission.IDProofPath,
		&admission.SignPath,
		&admission.MarklistPath,
		&admission.Status,
		&admission.CreatedAt,
		&admission.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return &admission, nil
}

// Create inserts a new admission application
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	query := `
		INSERT INTO admission (
			registration_id, course_id, student_name, email, date_of_birth,
			father_name, mother_name, mobile_no, aadhar_no, address, state,
			district, pincode, gender, previous_cgpa, obtain_marks, total_marks,
			percentage, passing_year, photo_path, id_proof_path, sign_path,
			marklist_path, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		admission.RegistrationID,
		admission.CourseID,
		admission.StudentName,
		admission.Email,
		admission.DateOfBirth,
		admission.FatherName,
		admission.MotherName,
		admission.MobileNo,
		admission.AadharNo,
		admission.Address,
		admission.State,
		admission.District,
		admission.Pincode,
		admission.Gender,
		admission.PreviousCGPA,
		admission.ObtainMarks,
		admission.TotalMarks,
		admission.Percentage,
		admission.PassingYear,
		admission.PhotoPath,
		admission.IDProofPath,
		admission.SignPath,
		admission.MarklistPath,
		admission.Status,
	).Scan(&admission.ID, &admission.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admission_aadhar_no_key") {
			return apperrors.ErrAadharExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating admission: %w", err)
	}

	return nil
}

// GetByID retrieves an admission with its course name
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	query := `
		SELECT ` + admissionColumns + `
		FROM admission a
		JOIN course c ON c.id = a.course_id
		WHERE a.id = $1
	`

	admission, err := scanAdmission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving admission: %w", err)
	}

	return admission, nil
}

// GetAll retrieves admissions newest first, optionally filtered by status,
// with total count for pagination.
func (r *AdmissionRepository) GetAll(ctx context.Context, status *models.AdmissionStatus, offset, limit int) ([]*models.Admission, int64, error) {
	countQuery := `SELECT COUNT(*) FROM admission a WHERE ($1::text IS NULL OR a.status = $1)`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting admissions: %w", err)
	}

	query := `
		SELECT ` + admissionColumns + `
		FROM admission a
		JOIN course c ON c.id = a.course_id
		WHERE ($1::text IS NULL OR a.status = $1)
		ORDER BY a.created_at DESC, a.id DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var admissions []*models.Admission
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			return nil, 0, err
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return admissions, total, nil
}

// GetByRegistrationID retrieves the admissions filed by one account
func (r *AdmissionRepository) GetByRegistrationID(ctx context.Context, registrationID int64) ([]*models.Admission, error) {
	query := `
		SELECT ` + admissionColumns + `
		FROM admission a
		JOIN course c ON c.id = a.course_id
		WHERE a.registration_id = $1
		ORDER BY a.created_at DESC, a.id DESC
	`

	rows, err := r.db.Query(ctx, query, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admissions []*models.Admission
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admissions, nil
}

// UpdateStatus sets the review status of an admission
func (r *AdmissionRepository) UpdateStatus(ctx context.Context, id int64, status models.AdmissionStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE admission SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating admission status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// AadharExists checks whether an Aadhar number is already on file
func (r *AdmissionRepository) AadharExists(ctx context.Context, aadharNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admission WHERE aadhar_no = $1)`, aadharNo).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking aadhar number: %w", err)
	}

	return exists, nil
}
