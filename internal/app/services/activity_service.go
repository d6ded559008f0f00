package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// ActivityService defines the interface for activity log operations
type ActivityService interface {
	LogActivity(ctx context.Context, req *dto.CreateActivityRequest) (*models.SocialActivity, error)
	GetActivityByID(ctx context.Context, id int64) (*models.SocialActivity, error)
	GetActivities(ctx context.Context, studentID *int64) ([]*models.SocialActivity, error)
	GetStudentActivities(ctx context.Context, studentID int64) ([]*models.SocialActivity, error)
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activityRepo *repositories.ActivityRepository
	studentRepo  *repositories.StudentRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	activityRepo *repositories.ActivityRepository,
	studentRepo *repositories.StudentRepository,
) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		studentRepo:  studentRepo,
	}
}

// LogActivity records an extracurricular activity for a student
func (s *activityServiceImpl) LogActivity(ctx context.Context, req *dto.CreateActivityRequest) (*models.SocialActivity, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: activity is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.ActivityCategory) == "" {
		return nil, fmt.Errorf("%w: activity category cannot be empty", apperrors.ErrValidationFailed)
	}

	activityDate, err := helpers.ParseDate(req.ActivityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activity date", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	activity := &models.SocialActivity{
		StudentID:        req.StudentID,
		ActivityCategory: req.ActivityCategory,
		ActivityDate:     activityDate,
		Description:      req.Description,
		StudentName:      student.StudentName,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// GetActivityByID retrieves an activity entry by ID
func (s *activityServiceImpl) GetActivityByID(ctx context.Context, id int64) (*models.SocialActivity, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid activity ID", apperrors.ErrValidationFailed)
	}

	return s.activityRepo.GetByID(ctx, id)
}

// GetActivities lists activity entries, optionally narrowed to one student
func (s *activityServiceImpl) GetActivities(ctx context.Context, studentID *int64) ([]*models.SocialActivity, error) {
	if studentID != nil && *studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.activityRepo.GetAll(ctx, studentID)
}

// GetStudentActivities lists the activity log of one student
func (s *activityServiceImpl) GetStudentActivities(ctx context.Context, studentID int64) ([]*models.SocialActivity, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.GetAll(ctx, &studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}

	return activities, nil
}
