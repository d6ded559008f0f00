package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// ResultService defines the interface for exam result operations
type ResultService interface {
	PublishResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error)
	GetResultByID(ctx context.Context, id int64) (*models.Result, error)
	GetAllResults(ctx context.Context, filter repositories.ResultFilter, page, pageSize int) ([]*models.Result, int64, error)
	GetStudentResults(ctx context.Context, studentID int64) ([]*models.Result, error)
}

// resultServiceImpl implements the ResultService interface
type resultServiceImpl struct {
	resultRepo  *repositories.ResultRepository
	studentRepo *repositories.StudentRepository
	examRepo    *repositories.ExamRepository
	logger      zerolog.Logger
}

// NewResultService creates a new result service instance
func NewResultService(
	resultRepo *repositories.ResultRepository,
	studentRepo *repositories.StudentRepository,
	examRepo *repositories.ExamRepository,
	logger zerolog.Logger,
) ResultService {
	return &resultServiceImpl{
		resultRepo:  resultRepo,
		studentRepo: studentRepo,
		examRepo:    examRepo,
		logger:      logger,
	}
}

// PublishResult records the outcome of an exam for a student
func (s *resultServiceImpl) PublishResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: result is nil", apperrors.ErrValidationFailed)
	}

	status := models.ResultStatus(req.ResultStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown result status %q", apperrors.ErrValidationFailed, req.ResultStatus)
	}

	if req.TotalMarks <= 0 || req.ObtainMarks < 0 || req.ObtainMarks > req.TotalMarks {
		return nil, fmt.Errorf("%w: obtained marks must be between 0 and total marks", apperrors.ErrValidationFailed)
	}

	if req.CGPA != nil && (*req.CGPA < 0 || *req.CGPA > 10) {
		return nil, fmt.Errorf("%w: cgpa must be between 0 and 10", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	exam, err := s.examRepo.GetByID(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		StudentID:    req.StudentID,
		ExamID:       req.ExamID,
		ObtainMarks:  req.ObtainMarks,
		TotalMarks:   req.TotalMarks,
		Grade:        req.Grade,
		CGPA:         req.CGPA,
		ResultStatus: status,
		StudentName:  student.StudentName,
		ExamName:     exam.ExamName,
		Subject:      exam.Subject,
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("resultID", result.ID).
		Int64("studentID", req.StudentID).
		Int64("examID", req.ExamID).
		Str("status", req.ResultStatus).
		Msg("Result published")

	return result, nil
}

// GetResultByID retrieves a result by ID
func (s *resultServiceImpl) GetResultByID(ctx context.Context, id int64) (*models.Result, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid result ID", apperrors.ErrValidationFailed)
	}

	return s.resultRepo.GetByID(ctx, id)
}

// GetAllResults lists results page by page, narrowed by the filter
func (s *resultServiceImpl) GetAllResults(ctx context.Context, filter repositories.ResultFilter, page, pageSize int) ([]*models.Result, int64, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown result status %q", apperrors.ErrValidationFailed, *filter.Status)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	return s.resultRepo.GetAll(ctx, filter, offset, limit)
}

// GetStudentResults lists every result of one student
func (s *resultServiceImpl) GetStudentResults(ctx context.Context, studentID int64) ([]*models.Result, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.resultRepo.GetByStudentID(ctx, studentID)
}
