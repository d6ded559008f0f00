package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/services"
	"github.com/skylink-edu/campus-linker/internal/middleware"
)

// FeeController handles fee record operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// CreateFee raises a fee charge
// @Summary Create a fee charge
// @Description Raises a pending charge against an admission. Administrator only.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=dto.FeeResponse} "Fee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.CreateFee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toFeeResponse(fee),
		Timestamp: time.Now(),
	})
}

// GetFees lists the fee records of an admission
// @Summary List fees
// @Description Retrieves the fee records of an admission
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admissionId query int true "Admission ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.FeeListResponse} "Fees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid admission ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [get]
func (c *FeeController) GetFees(ctx *gin.Context) {
	admissionID, err := strconv.ParseInt(ctx.Query("admissionId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission ID").
			WithDetails("admissionId query parameter is required and must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fees, err := c.feeService.GetAdmissionFees(ctx, admissionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FeeListResponse{Fees: toFeeResponses(fees)},
		Timestamp: time.Now(),
	})
}

// GetFeeByID retrieves a fee record
// @Summary Get fee details
// @Description Retrieves one fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse} "Fee retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id} [get]
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee ID").
			WithDetails("Fee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fee, err := c.feeService.GetFeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toFeeResponse(fee),
		Timestamp: time.Now(),
	})
}

// RecordPayment settles a fee
// @Summary Record a payment
// @Description Records the outcome of a payment attempt against a fee. Administrator only.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Param request body dto.RecordPaymentRequest true "Payment outcome"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id}/payment [put]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee ID").
			WithDetails("Fee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.RecordPayment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toFeeResponse(fee),
		Timestamp: time.Now(),
	})
}
