package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/db"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// StudentService defines the interface for roster operations
type StudentService interface {
	EnrollStudent(ctx context.Context, admissionID int64) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, page, pageSize int) ([]*models.Student, int64, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo   *repositories.StudentRepository
	admissionRepo *repositories.AdmissionRepository
	database      *db.PostgresDB
	logger        zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	admissionRepo *repositories.AdmissionRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo:   studentRepo,
		admissionRepo: admissionRepo,
		database:      database,
		logger:        logger,
	}
}

// EnrollStudent promotes an admission into the student roster. The
// student row and the admission approval are committed together, so a
// duplicate enrollment can never leave the admission half-updated.
func (s *studentServiceImpl) EnrollStudent(ctx context.Context, admissionID int64) (*models.Student, error) {
	if admissionID <= 0 {
		return nil, fmt.Errorf("%w: invalid admission ID", apperrors.ErrValidationFailed)
	}

	admission, err := s.admissionRepo.GetByID(ctx, admissionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetByAdmissionID(ctx, admissionID); err == nil {
		return nil, apperrors.ErrStudentAlreadyExists
	} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	student := &models.Student{
		AdmissionID: admission.ID,
		CourseID:    admission.CourseID,
		StudentName: admission.StudentName,
		CourseName:  admission.CourseName,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.CreateTx(ctx, tx, student); err != nil {
			return err
		}
		return s.studentRepo.UpdateAdmissionStatusTx(ctx, tx, admission.ID, models.AdmissionApproved)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("admissionID", admission.ID).
		Msg("Student enrolled")

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents lists the roster page by page
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, page, pageSize int) ([]*models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	return s.studentRepo.GetAll(ctx, offset, limit)
}
