package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

// stubCourseService returns canned catalog data for controller tests.
type stubCourseService struct {
	course    *models.Course
	courses   []*models.Course
	fees      []*models.CourseFee
	createErr error
	getErr    error
	deleteErr error
}

func (s *stubCourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if s.createErr != nil {
		return s.createErr
	}
	course.ID = 1
	return nil
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.course, s.getErr
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, nil
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	return s.createErr
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.deleteErr
}

func (s *stubCourseService) GetCourseFees(ctx context.Context, courseID int64) ([]*models.CourseFee, error) {
	return s.fees, s.getErr
}

func courseTestRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCourseController(svc)
	router.POST("/courses", controller.CreateCourse)
	router.GET("/courses", controller.GetAllCourses)
	router.GET("/courses/:id", controller.GetCourseByID)
	router.DELETE("/courses/:id", controller.DeleteCourse)
	router.GET("/courses/:id/fees", controller.GetCourseFees)
	return router
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetAllCourses(t *testing.T) {
	svc := &stubCourseService{
		courses: []*models.Course{
			{ID: 1, CourseName: "BBA", CourseCode: "BBA001", DurationYears: 3},
			{ID: 2, CourseName: "MBA", CourseCode: "MBA001", DurationYears: 2},
		},
	}
	router := courseTestRouter(svc)

	rec := getPath(t, router, "/courses")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data dto.CourseListResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Courses) != 2 {
		t.Fatalf("courses = %d, want 2", len(resp.Data.Courses))
	}
	if resp.Data.Courses[0].CourseCode != "BBA001" {
		t.Errorf("first course code = %q, want BBA001", resp.Data.Courses[0].CourseCode)
	}
}

func TestGetCourseByID_BadID(t *testing.T) {
	router := courseTestRouter(&stubCourseService{})

	rec := getPath(t, router, "/courses/abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetCourseByID_NotFound(t *testing.T) {
	router := courseTestRouter(&stubCourseService{getErr: apperrors.ErrCourseNotFound})

	rec := getPath(t, router, "/courses/99")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCreateCourse_DuplicateCode(t *testing.T) {
	router := courseTestRouter(&stubCourseService{createErr: apperrors.ErrCourseCodeExists})

	rec := postJSON(t, router, "/courses", dto.CreateCourseRequest{
		CourseName:    "BBA",
		CourseCode:    "BBA001",
		DurationYears: 3,
	})

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestDeleteCourse_HasRelations(t *testing.T) {
	router := courseTestRouter(&stubCourseService{deleteErr: apperrors.ErrCourseHasRelations})

	req := httptest.NewRequest(http.MethodDelete, "/courses/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestGetCourseFees_CourseMissing(t *testing.T) {
	router := courseTestRouter(&stubCourseService{getErr: apperrors.ErrCourseNotFound})

	rec := getPath(t, router, "/courses/42/fees")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
