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

// StudentRepository handles database operations for the student roster
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateTx inserts a new student inside an existing transaction.
// Enrollment updates the admission in the same transaction, so the
// insert never runs on the pool directly.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	query := `
		INSERT INTO student (admission_id, course_id, student_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, student.AdmissionID, student.CourseID, student.StudentName).
		Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_admission_id_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAdmissionNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// UpdateAdmissionStatusTx sets an admission status inside an existing transaction
func (r *StudentRepository) UpdateAdmissionStatusTx(ctx context.Context, tx pgx.Tx, admissionID int64, status models.AdmissionStatus) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE admission SET status = $1 WHERE id = $2`, status, admissionID)
	if err != nil {
		return fmt.Errorf("error updating admission status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// GetByID retrieves a student with their course name
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.admission_id, s.course_id, s.student_name, s.created_at, c.course_name
		FROM student s
		JOIN course c ON c.id = s.course_id
		WHERE s.id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.AdmissionID,
		&student.CourseID,
		&student.StudentName,
		&student.CreatedAt,
		&student.CourseName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByAdmissionID retrieves the student enrolled from an admission, if any
func (r *StudentRepository) GetByAdmissionID(ctx context.Context, admissionID int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.admission_id, s.course_id, s.student_name, s.created_at, c.course_name
		FROM student s
		JOIN course c ON c.id = s.course_id
		WHERE s.admission_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, admissionID).Scan(
		&student.ID,
		&student.AdmissionID,
		&student.CourseID,
		&student.StudentName,
		&student.CreatedAt,
		&student.CourseName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves students newest first with total count for pagination
func (r *StudentRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT s.id, s.admission_id, s.course_id, s.student_name, s.created_at, c.course_name
		FROM student s
		JOIN course c ON c.id = s.course_id
		ORDER BY s.created_at DESC, s.id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.AdmissionID,
			&student.CourseID,
			&student.StudentName,
			&student.CreatedAt,
			&student.CourseName,
		); err != nil {
			return nil, 0, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
