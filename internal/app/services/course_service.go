package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
	GetCourseFees(ctx context.Context, courseID int64) ([]*models.CourseFee, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.CourseName) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !isValidCourseCode(course.CourseCode) {
		return fmt.Errorf("%w: course code must be uppercase alphanumeric", apperrors.ErrValidationFailed)
	}

	if course.DurationYears <= 0 {
		return fmt.Errorf("%w: duration must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// isValidCourseCode checks if a course code is uppercase alphanumeric,
// like "BBA001".
func isValidCourseCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}

	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}

	return true
}

// CreateCourse adds a course to the catalog
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves the full catalog
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse modifies an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course from the catalog
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Delete(ctx, id)
}

// GetCourseFees lists the fee categories published for a course
func (s *courseServiceImpl) GetCourseFees(ctx context.Context, courseID int64) ([]*models.CourseFee, error) {
	// Resolve the course first so a missing ID reports not-found
	// instead of an empty fee list.
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	return s.courseRepo.GetFees(ctx, courseID)
}
