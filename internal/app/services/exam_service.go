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

// ExamService defines the interface for exam scheduling operations
type ExamService interface {
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	GetAllExams(ctx context.Context, courseID *int64, page, pageSize int) ([]*models.Exam, int64, error)
	UpdateExam(ctx context.Context, id int64, req *dto.UpdateExamRequest) (*models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
}

// examServiceImpl implements the ExamService interface
type examServiceImpl struct {
	examRepo   *repositories.ExamRepository
	courseRepo *repositories.CourseRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository, courseRepo *repositories.CourseRepository) ExamService {
	return &examServiceImpl{
		examRepo:   examRepo,
		courseRepo: courseRepo,
	}
}

func validateExamFields(examName, subject, examType string, durationMinutes, maxMarks int, examFee float64) error {
	if strings.TrimSpace(examName) == "" {
		return fmt.Errorf("%w: exam name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("%w: subject cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(examType) == "" {
		return fmt.Errorf("%w: exam type cannot be empty", apperrors.ErrValidationFailed)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", apperrors.ErrValidationFailed)
	}
	if maxMarks <= 0 {
		return fmt.Errorf("%w: max marks must be positive", apperrors.ErrValidationFailed)
	}
	if examFee < 0 {
		return fmt.Errorf("%w: exam fee cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateExam schedules a new exam for a course
func (s *examServiceImpl) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: exam is nil", apperrors.ErrValidationFailed)
	}
	if err := validateExamFields(req.ExamName, req.Subject, req.ExamType, req.DurationMinutes, req.MaxMarks, req.ExamFee); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	examDate, err := helpers.ParseDate(req.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid exam date", apperrors.ErrValidationFailed)
	}

	exam := &models.Exam{
		ExamName:        req.ExamName,
		Subject:         req.Subject,
		ExamType:        req.ExamType,
		CourseID:        req.CourseID,
		ExamDate:        examDate,
		ExamTime:        req.ExamTime,
		DurationMinutes: req.DurationMinutes,
		MaxMarks:        req.MaxMarks,
		ExamFee:         req.ExamFee,
		Instructions:    req.Instructions,
		CourseName:      course.CourseName,
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// GetExamByID retrieves an exam by ID
func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	return s.examRepo.GetByID(ctx, id)
}

// GetAllExams lists exams page by page, optionally narrowed to one course
func (s *examServiceImpl) GetAllExams(ctx context.Context, courseID *int64, page, pageSize int) ([]*models.Exam, int64, error) {
	if courseID != nil && *courseID <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	return s.examRepo.GetAll(ctx, courseID, offset, limit)
}

// UpdateExam modifies a scheduled exam
func (s *examServiceImpl) UpdateExam(ctx context.Context, id int64, req *dto.UpdateExamRequest) (*models.Exam, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: exam is nil", apperrors.ErrValidationFailed)
	}
	if err := validateExamFields(req.ExamName, req.Subject, req.ExamType, req.DurationMinutes, req.MaxMarks, req.ExamFee); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	examDate, err := helpers.ParseDate(req.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid exam date", apperrors.ErrValidationFailed)
	}

	exam := &models.Exam{
		ID:              id,
		ExamName:        req.ExamName,
		Subject:         req.Subject,
		ExamType:        req.ExamType,
		CourseID:        req.CourseID,
		ExamDate:        examDate,
		ExamTime:        req.ExamTime,
		DurationMinutes: req.DurationMinutes,
		MaxMarks:        req.MaxMarks,
		ExamFee:         req.ExamFee,
		Instructions:    req.Instructions,
		CourseName:      course.CourseName,
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// DeleteExam removes a scheduled exam
func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	return s.examRepo.Delete(ctx, id)
}
