package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

// FeeService defines the interface for fee record operations
type FeeService interface {
	CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error)
	GetFeeByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAdmissionFees(ctx context.Context, admissionID int64) ([]*models.Fee, error)
	RecordPayment(ctx context.Context, id int64, req *dto.RecordPaymentRequest) (*models.Fee, error)
}

// feeServiceImpl implements the FeeService interface
type feeServiceImpl struct {
	feeRepo       *repositories.FeeRepository
	admissionRepo *repositories.AdmissionRepository
	logger        zerolog.Logger
}

// NewFeeService creates a new fee service instance
func NewFeeService(
	feeRepo *repositories.FeeRepository,
	admissionRepo *repositories.AdmissionRepository,
	logger zerolog.Logger,
) FeeService {
	return &feeServiceImpl{
		feeRepo:       feeRepo,
		admissionRepo: admissionRepo,
		logger:        logger,
	}
}

// CreateFee raises a pending charge against an admission
func (s *feeServiceImpl) CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: fee is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.FeeCategory) == "" {
		return nil, fmt.Errorf("%w: fee category cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	admission, err := s.admissionRepo.GetByID(ctx, req.AdmissionID)
	if err != nil {
		return nil, err
	}

	fee := &models.Fee{
		AdmissionID:   req.AdmissionID,
		FeeCategory:   req.FeeCategory,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		StudentName:   admission.StudentName,
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("feeID", fee.ID).
		Int64("admissionID", req.AdmissionID).
		Float64("amount", req.Amount).
		Msg("Fee charge created")

	return fee, nil
}

// GetFeeByID retrieves a fee record by ID
func (s *feeServiceImpl) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid fee ID", apperrors.ErrValidationFailed)
	}

	return s.feeRepo.GetByID(ctx, id)
}

// GetAdmissionFees lists the fee records of an admission
func (s *feeServiceImpl) GetAdmissionFees(ctx context.Context, admissionID int64) ([]*models.Fee, error) {
	if _, err := s.admissionRepo.GetByID(ctx, admissionID); err != nil {
		return nil, err
	}

	return s.feeRepo.GetByAdmissionID(ctx, admissionID)
}

// RecordPayment settles a fee with the outcome of a payment attempt.
// The payment date is stamped whatever the outcome, matching when the
// attempt happened rather than whether it succeeded.
func (s *feeServiceImpl) RecordPayment(ctx context.Context, id int64, req *dto.RecordPaymentRequest) (*models.Fee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid fee ID", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: payment is nil", apperrors.ErrValidationFailed)
	}

	status := models.PaymentStatus(req.PaymentStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidationFailed, req.PaymentStatus)
	}

	if err := s.feeRepo.RecordPayment(ctx, id, req.PaymentMethod, status, time.Now()); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("feeID", id).
		Str("status", req.PaymentStatus).
		Msg("Payment recorded")

	return s.feeRepo.GetByID(ctx, id)
}
