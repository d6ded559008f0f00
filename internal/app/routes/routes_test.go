package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/controllers"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/middleware"
	"github.com/skylink-edu/campus-linker/internal/pkg/auth"
)

// emptyCourseService serves an empty catalog for route wiring tests.
type emptyCourseService struct{}

func (emptyCourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	return nil
}
func (emptyCourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}
func (emptyCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return nil, nil
}
func (emptyCourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	return nil
}
func (emptyCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return nil
}
func (emptyCourseService) GetCourseFees(ctx context.Context, courseID int64) ([]*models.CourseFee, error) {
	return nil, nil
}

// emptyExamService serves an empty exam schedule for route wiring tests.
type emptyExamService struct{}

func (emptyExamService) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	return &models.Exam{}, nil
}
func (emptyExamService) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return &models.Exam{ID: id}, nil
}
func (emptyExamService) GetAllExams(ctx context.Context, courseID *int64, page, pageSize int) ([]*models.Exam, int64, error) {
	return nil, 0, nil
}
func (emptyExamService) UpdateExam(ctx context.Context, id int64, req *dto.UpdateExamRequest) (*models.Exam, error) {
	return &models.Exam{ID: id}, nil
}
func (emptyExamService) DeleteExam(ctx context.Context, id int64) error {
	return nil
}

// testRouter wires the full route table with nil services; requests that
// are rejected by middleware never reach a handler.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "routes-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campus-linker-test",
	})

	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewCourseController(emptyCourseService{}),
		controllers.NewAdmissionController(nil),
		controllers.NewStudentController(nil, nil, nil),
		controllers.NewExamController(emptyExamService{}),
		controllers.NewResultController(nil),
		controllers.NewFeeController(nil),
		controllers.NewActivityController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)

	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data["status"] != "ok" {
		t.Errorf("status field = %q, want ok", resp.Data["status"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/admissions"},
		{http.MethodPost, "/api/v1/admissions"},
		{http.MethodGet, "/api/v1/students"},
		{http.MethodGet, "/api/v1/results"},
		{http.MethodGet, "/api/v1/fees"},
		{http.MethodGet, "/api/v1/activities"},
		{http.MethodPost, "/api/v1/courses"},
		{http.MethodDelete, "/api/v1/exams/1"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestPublicCatalogRoutesSkipAuth(t *testing.T) {
	router := testRouter()

	public := []string{
		"/api/v1/courses",
		"/api/v1/exams",
	}

	for _, path := range public {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("public route %s status = %d, want %d", path, rec.Code, http.StatusOK)
			}
		})
	}
}
