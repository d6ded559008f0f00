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

// ActivityController handles activity log operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// LogActivity records an activity
// @Summary Log an activity
// @Description Records an extracurricular activity for a student. Administrator only.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateActivityRequest true "Activity information"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity logged successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [post]
func (c *ActivityController) LogActivity(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	activity, err := c.activityService.LogActivity(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toActivityResponse(activity),
		Timestamp: time.Now(),
	})
}

// GetActivities lists activity entries
// @Summary List activities
// @Description Retrieves activity entries, optionally narrowed to one student
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ActivityListResponse} "Activities retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetActivities(ctx *gin.Context) {
	var studentID *int64
	if studentIDStr := ctx.Query("studentId"); studentIDStr != "" {
		id, err := strconv.ParseInt(studentIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID").
				WithDetails("studentId must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		studentID = &id
	}

	activities, err := c.activityService.GetActivities(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ActivityListResponse{Activities: toActivityResponses(activities)},
		Timestamp: time.Now(),
	})
}

// GetActivityByID retrieves an activity entry
// @Summary Get activity details
// @Description Retrieves one activity entry
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivityByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid activity ID").
			WithDetails("Activity ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity, err := c.activityService.GetActivityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toActivityResponse(activity),
		Timestamp: time.Now(),
	})
}
