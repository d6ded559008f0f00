package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
	"github.com/skylink-edu/campus-linker/internal/pkg/validation"
)

// AdmissionService defines the interface for admission intake operations
type AdmissionService interface {
	CreateAdmission(ctx context.Context, registrationID int64, req *dto.CreateAdmissionRequest) (*models.Admission, error)
	GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error)
	GetAllAdmissions(ctx context.Context, status *models.AdmissionStatus, page, pageSize int) ([]*models.Admission, int64, error)
	GetOwnAdmissions(ctx context.Context, registrationID int64) ([]*models.Admission, error)
	UpdateAdmissionStatus(ctx context.Context, id int64, status models.AdmissionStatus) error
}

// admissionServiceImpl implements the AdmissionService interface
type admissionServiceImpl struct {
	admissionRepo *repositories.AdmissionRepository
	courseRepo    *repositories.CourseRepository
	logger        zerolog.Logger
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(
	admissionRepo *repositories.AdmissionRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) AdmissionService {
	return &admissionServiceImpl{
		admissionRepo: admissionRepo,
		courseRepo:    courseRepo,
		logger:        logger,
	}
}

// validateAdmission validates an application form before database operations
func (s *admissionServiceImpl) validateAdmission(req *dto.CreateAdmissionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: admission is nil", apperrors.ErrValidationFailed)
	}

	form := validation.NewForm().
		Require("studentName", req.StudentName).
		Require("email", req.Email).
		Require("dateOfBirth", req.DateOfBirth).
		Require("fatherName", req.FatherName).
		Require("motherName", req.MotherName).
		Require("mobileNo", req.MobileNo).
		Require("aadharNo", req.AadharNo).
		Require("address", req.Address).
		Require("state", req.State).
		Require("district", req.District).
		Require("pincode", req.Pincode).
		Require("gender", req.Gender)

	if !form.Validate() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Required fields are missing").
			WithDetails(map[string]interface{}{"fields": form.Invalid()})
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(req.Email)) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.Mobile.MatchString(req.MobileNo) {
		return fmt.Errorf("%w: mobile number must be 10 digits", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.Aadhar.MatchString(req.AadharNo) {
		return fmt.Errorf("%w: aadhar number must be 12 digits", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.Pincode.MatchString(req.Pincode) {
		return fmt.Errorf("%w: pincode must be 6 digits", apperrors.ErrValidationFailed)
	}

	if req.ObtainMarks != nil && req.TotalMarks != nil {
		if *req.TotalMarks <= 0 || *req.ObtainMarks < 0 || *req.ObtainMarks > *req.TotalMarks {
			return fmt.Errorf("%w: obtained marks must be between 0 and total marks", apperrors.ErrValidationFailed)
		}
	}

	return nil
}

// CreateAdmission files a new application for the calling account.
// The qualifying percentage is derived from the marks, never accepted
// from the client.
func (s *admissionServiceImpl) CreateAdmission(ctx context.Context, registrationID int64, req *dto.CreateAdmissionRequest) (*models.Admission, error) {
	if err := s.validateAdmission(req); err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	exists, err := s.admissionRepo.AadharExists(ctx, req.AadharNo)
	if err != nil {
		return nil, fmt.Errorf("error checking aadhar number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAadharExists
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
	}

	var percentage *float64
	if req.ObtainMarks != nil && req.TotalMarks != nil {
		p := float64(*req.ObtainMarks) / float64(*req.TotalMarks) * 100
		percentage = &p
	}

	admission := &models.Admission{
		RegistrationID: registrationID,
		CourseID:       req.CourseID,
		StudentName:    req.StudentName,
		Email:          strings.ToLower(req.Email),
		DateOfBirth:    dateOfBirth,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		MobileNo:       req.MobileNo,
		AadharNo:       req.AadharNo,
		Address:        req.Address,
		State:          req.State,
		District:       req.District,
		Pincode:        req.Pincode,
		Gender:         req.Gender,
		PreviousCGPA:   req.PreviousCGPA,
		ObtainMarks:    req.ObtainMarks,
		TotalMarks:     req.TotalMarks,
		Percentage:     percentage,
		PassingYear:    req.PassingYear,
		PhotoPath:      req.PhotoPath,
		IDProofPath:    req.IDProofPath,
		SignPath:       req.SignPath,
		MarklistPath:   req.MarklistPath,
		Status:         models.AdmissionPending,
	}

	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("admissionID", admission.ID).
		Int64("registrationID", registrationID).
		Int64("courseID", req.CourseID).
		Msg("Admission application filed")

	return admission, nil
}

// GetAdmissionByID retrieves an admission by ID
func (s *admissionServiceImpl) GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid admission ID", apperrors.ErrValidationFailed)
	}

	return s.admissionRepo.GetByID(ctx, id)
}

// GetAllAdmissions lists admissions page by page, optionally filtered by status
func (s *admissionServiceImpl) GetAllAdmissions(ctx context.Context, status *models.AdmissionStatus, page, pageSize int) ([]*models.Admission, int64, error) {
	if status != nil && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown admission status %q", apperrors.ErrValidationFailed, *status)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	return s.admissionRepo.GetAll(ctx, status, offset, limit)
}

// GetOwnAdmissions lists the admissions filed by one account
func (s *admissionServiceImpl) GetOwnAdmissions(ctx context.Context, registrationID int64) ([]*models.Admission, error) {
	return s.admissionRepo.GetByRegistrationID(ctx, registrationID)
}

// UpdateAdmissionStatus sets the review status of an admission. Any of
// the known statuses can be set at any time; there is no enforced
// transition order.
func (s *admissionServiceImpl) UpdateAdmissionStatus(ctx context.Context, id int64, status models.AdmissionStatus) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid admission ID", apperrors.ErrValidationFailed)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown admission status %q", apperrors.ErrValidationFailed, status)
	}

	if err := s.admissionRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info().Int64("admissionID", id).Str("status", string(status)).Msg("Admission status updated")
	return nil
}
