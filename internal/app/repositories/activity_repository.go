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

// ActivityRepository handles database operations for activity logs
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// Create logs a new activity for a student
func (r *ActivityRepository) Create(ctx context.Context, activity *models.SocialActivity) error {
	query := `
		INSERT INTO social_activity (student_id, activity_category, activity_date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		activity.StudentID,
		activity.ActivityCategory,
		activity.ActivityDate,
		activity.Description,
	).Scan(&activity.ID, &activity.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating activity: %w", err)
	}

	return nil
}

// GetByID retrieves an activity entry with the student name
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.SocialActivity, error) {
	query := `
		SELECT sa.id, sa.student_id, sa.activity_category, sa.activity_date,
			sa.description, sa.created_at, s.student_name
		FROM social_activity sa
		JOIN student s ON s.id = sa.student_id
		WHERE sa.id = $1
	`

	var activity models.SocialActivity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.StudentID,
		&activity.ActivityCategory,
		&activity.ActivityDate,
		&activity.Description,
		&activity.CreatedAt,
		&activity.StudentName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("error retrieving activity: %w", err)
	}

	return &activity, nil
}

// GetAll retrieves activity entries newest first, optionally filtered
// by student.
func (r *ActivityRepository) GetAll(ctx context.Context, studentID *int64) ([]*models.SocialActivity, error) {
	query := `
		SELECT sa.id, sa.student_id, sa.activity_category, sa.activity_date,
			sa.description, sa.created_at, s.student_name
		FROM social_activity sa
		JOIN student s ON s.id = sa.student_id
		WHERE ($1::bigint IS NULL OR sa.student_id = $1)
		ORDER BY sa.activity_date DESC, sa.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.SocialActivity
	for rows.Next() {
		var activity models.SocialActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.StudentID,
			&activity.ActivityCategory,
			&activity.ActivityDate,
			&activity.Description,
			&activity.CreatedAt,
			&activity.StudentName,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
