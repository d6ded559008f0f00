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

// ExamRepository handles database operations for scheduled exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
	}
}

const examColumns = `
	e.id, e.exam_name, e.subject, e.exam_type, e.course_id, e.exam_date,
	e.exam_time, e.duration_minutes, e.max_marks, e.exam_fee, e.instructions,
	e.created_at, c.course_name`

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	err := row.Scan(
		&exam.ID,
		&exam.ExamName,
		&exam.Subject,
		&exam.ExamType,
		&exam.CourseID,
		&exam.ExamDate,
		&exam.ExamTime,
		&exam.DurationMinutes,
		&exam.MaxMarks,
		&exam.ExamFee,
		&exam.Instructions,
		&exam.CreatedAt,
		&exam.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create inserts a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exam (
			exam_name, subject, exam_type, course_id, exam_date, exam_time,
			duration_minutes, max_marks, exam_fee, instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		exam.ExamName,
		exam.Subject,
		exam.ExamType,
		exam.CourseID,
		exam.ExamDate,
		exam.ExamTime,
		exam.DurationMinutes,
		exam.MaxMarks,
		exam.ExamFee,
		exam.Instructions,
	).Scan(&exam.ID, &exam.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam with its course name
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `
		SELECT ` + examColumns + `
		FROM exam e
		JOIN course c ON c.id = e.course_id
		WHERE e.id = $1
	`

	exam, err := scanExam(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	return exam, nil
}

// GetAll retrieves exams ordered by date, optionally filtered by course,
// with total count for pagination.
func (r *ExamRepository) GetAll(ctx context.Context, courseID *int64, offset, limit int) ([]*models.Exam, int64, error) {
	countQuery := `SELECT COUNT(*) FROM exam e WHERE ($1::bigint IS NULL OR e.course_id = $1)`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, courseID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting exams: %w", err)
	}

	query := `
		SELECT ` + examColumns + `
		FROM exam e
		JOIN course c ON c.id = e.course_id
		WHERE ($1::bigint IS NULL OR e.course_id = $1)
		ORDER BY e.exam_date, e.id
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, courseID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, 0, err
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return exams, total, nil
}

// Update modifies an existing exam
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exam
		SET exam_name = $1, subject = $2, exam_type = $3, course_id = $4,
			exam_date = $5, exam_time = $6, duration_minutes = $7,
			max_marks = $8, exam_fee = $9, instructions = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.ExamName,
		exam.Subject,
		exam.ExamType,
		exam.CourseID,
		exam.ExamDate,
		exam.ExamTime,
		exam.DurationMinutes,
		exam.MaxMarks,
		exam.ExamFee,
		exam.Instructions,
		exam.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete removes an exam. Exams with published results are protected
// by a foreign key.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exam WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}
