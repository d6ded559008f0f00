package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/services"
	"github.com/skylink-edu/campus-linker/internal/middleware"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// AdmissionController handles admission intake operations
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// CreateAdmission files an admission application
// @Summary File an admission application
// @Description Files an application against a course for the calling account
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdmissionRequest true "Application form"
// @Success 201 {object} dto.APIResponse{data=dto.AdmissionResponse} "Application filed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Aadhar number already on file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [post]
func (c *AdmissionController) CreateAdmission(ctx *gin.Context) {
	var req dto.CreateAdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	registrationID := ctx.GetInt64(middleware.ContextRegistrationID)

	admission, err := c.admissionService.CreateAdmission(ctx, registrationID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toAdmissionResponse(admission),
		Timestamp: time.Now(),
	})
}

// GetAdmissions lists admissions
// @Summary List admissions
// @Description Administrators see every application, optionally filtered by status; other callers see their own
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(Pending, Approved, Rejected)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionListResponse} "Admissions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [get]
func (c *AdmissionController) GetAdmissions(ctx *gin.Context) {
	role := ctx.GetString(middleware.ContextRole)
	if role != string(models.RoleAdmin) {
		registrationID := ctx.GetInt64(middleware.ContextRegistrationID)
		admissions, err := c.admissionService.GetOwnAdmissions(ctx, registrationID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		responses := toAdmissionResponses(admissions)
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data: dto.AdmissionListResponse{
				Admissions: responses,
				Pagination: helpers.NewPaginationInfo(int64(len(responses)), 1, len(responses)),
			},
			Timestamp: time.Now(),
		})
		return
	}

	var status *models.AdmissionStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := models.AdmissionStatus(statusStr)
		status = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)
	admissions, total, err := c.admissionService.GetAllAdmissions(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AdmissionListResponse{
			Admissions: toAdmissionResponses(admissions),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetAdmissionByID retrieves an admission
// @Summary Get admission details
// @Description Retrieves one application. Non-administrators can only read their own.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admission ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionResponse} "Admission retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid admission ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - not the applicant"
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions/{id} [get]
func (c *AdmissionController) GetAdmissionByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission ID").
			WithDetails("Admission ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admission, err := c.admissionService.GetAdmissionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	role := ctx.GetString(middleware.ContextRole)
	if role != string(models.RoleAdmin) && admission.RegistrationID != ctx.GetInt64(middleware.ContextRegistrationID) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You can only view your own applications")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toAdmissionResponse(admission),
		Timestamp: time.Now(),
	})
}

// UpdateAdmissionStatus sets the review status of an admission
// @Summary Update admission status
// @Description Sets the review status. Administrator only. Any known status can be set at any time.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admission ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAdmissionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions/{id}/status [put]
func (c *AdmissionController) UpdateAdmissionStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission ID").
			WithDetails("Admission ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAdmissionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.admissionService.UpdateAdmissionStatus(ctx, id, models.AdmissionStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "Status updated"},
		Timestamp: time.Now(),
	})
}
