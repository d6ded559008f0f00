package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/app/services"
	"github.com/skylink-edu/campus-linker/internal/middleware"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// ResultController handles exam result operations
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// PublishResult publishes an exam result
// @Summary Publish a result
// @Description Records the outcome of an exam for a student. Administrator only.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResultRequest true "Result information"
// @Success 201 {object} dto.APIResponse{data=dto.ResultResponse} "Result published successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Student or exam not found"
// @Failure 409 {object} dto.ErrorResponse "Result already published for this student and exam"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (c *ResultController) PublishResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.resultService.PublishResult(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toResultResponse(result),
		Timestamp: time.Now(),
	})
}

// GetAllResults lists published results
// @Summary List results
// @Description Retrieves published results, narrowed by student, exam or status
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student" Format(int64) minimum(1)
// @Param examId query int false "Filter by exam" Format(int64) minimum(1)
// @Param status query string false "Filter by status" Enums(Pass, Fail, ATKT)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ResultListResponse} "Results retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	var filter repositories.ResultFilter

	if studentIDStr := ctx.Query("studentId"); studentIDStr != "" {
		id, err := strconv.ParseInt(studentIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID").
				WithDetails("studentId must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.StudentID = &id
	}

	if examIDStr := ctx.Query("examId"); examIDStr != "" {
		id, err := strconv.ParseInt(examIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID").
				WithDetails("examId must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.ExamID = &id
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := models.ResultStatus(statusStr)
		filter.Status = &status
	}

	page, size := helpers.ParsePaginationParams(ctx)
	results, total, err := c.resultService.GetAllResults(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ResultListResponse{
			Results:    toResultResponses(results),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetResultByID retrieves a result
// @Summary Get result details
// @Description Retrieves one published result
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ResultResponse} "Result retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{id} [get]
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid result ID").
			WithDetails("Result ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.resultService.GetResultByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toResultResponse(result),
		Timestamp: time.Now(),
	})
}
