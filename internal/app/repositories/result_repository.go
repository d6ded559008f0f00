package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/dberrors"
)

// ResultFilter narrows a result listing. Nil fields are ignored.
type ResultFilter struct {
	StudentID *int64
	ExamID    *int64
	Status    *models.ResultStatus
}

// ResultRepository handles database operations for exam results
type ResultRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanResult(row pgx.Row) (*models.Result, error) {
	var result models.Result
	err := row.Scan(
		&result.ID,
		&result.StudentID,
		&result.ExamID,
		&result.ObtainMarks,
		&result.TotalMarks,
		&result.Grade,
		&result.CGPA,
		&result.ResultStatus,
		&result.CreatedAt,
		&result.StudentName,
		&result.ExamName,
		&result.Subject,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Create publishes a new exam result
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO result (student_id, exam_id, obtain_marks, total_marks, grade, cgpa, result_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID,
		result.ExamID,
		result.ObtainMarks,
		result.TotalMarks,
		result.Grade,
		result.CGPA,
		result.ResultStatus,
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "result_student_id_exam_id_key") {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBadRequest
		}
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// GetByID retrieves a result with its student and exam names
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*models.Result, error) {
	query := `
		SELECT r.id, r.student_id, r.exam_id, r.obtain_marks, r.total_marks,
			r.grade, r.cgpa, r.result_status, r.created_at,
			s.student_name, e.exam_name, e.subject
		FROM result r
		JOIN student s ON s.id = r.student_id
		JOIN exam e ON e.id = r.exam_id
		WHERE r.id = $1
	`

	result, err := scanResult(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("error retrieving result: %w", err)
	}

	return result, nil
}

// GetAll retrieves results newest first matching the filter, with total
// count for pagination.
func (r *ResultRepository) GetAll(ctx context.Context, filter ResultFilter, offset, limit int) ([]*models.Result, int64, error) {
	where := squirrel.And{}
	if filter.StudentID != nil {
		where = append(where, squirrel.Eq{"r.student_id": *filter.StudentID})
	}
	if filter.ExamID != nil {
		where = append(where, squirrel.Eq{"r.exam_id": *filter.ExamID})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"r.result_status": *filter.Status})
	}

	countBuilder := r.sb.Select("COUNT(*)").From("result r")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build result count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting results: %w", err)
	}

	builder := r.sb.Select(
		"r.id", "r.student_id", "r.exam_id", "r.obtain_marks", "r.total_marks",
		"r.grade", "r.cgpa", "r.result_status", "r.created_at",
		"s.student_name", "e.exam_name", "e.subject",
	).
		From("result r").
		Join("student s ON s.id = r.student_id").
		Join("exam e ON e.id = r.exam_id").
		OrderBy("r.created_at DESC", "r.id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build result list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetByStudentID retrieves every result of one student
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	query := `
		SELECT r.id, r.student_id, r.exam_id, r.obtain_marks, r.total_marks,
			r.grade, r.cgpa, r.result_status, r.created_at,
			s.student_name, e.exam_name, e.subject
		FROM result r
		JOIN student s ON s.id = r.student_id
		JOIN exam e ON e.id = r.exam_id
		WHERE r.student_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
