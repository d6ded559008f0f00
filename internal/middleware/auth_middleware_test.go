package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/pkg/auth"
)

func protectedRouter(t *testing.T, jwtService *auth.JWTService, requiredRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := NewAuthMiddleware(jwtService)
	group := router.Group("", m.JWTAuth())
	if requiredRole != "" {
		group.Use(m.RoleRequired(requiredRole))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"registrationId": c.GetInt64(ContextRegistrationID),
			"username":       c.GetString(ContextUsername),
			"role":           c.GetString(ContextRole),
		})
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.Registration{
		ID:       7,
		Username: "tester",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	return access
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campus-linker-test",
	})
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedRouter(t, jwtService, "")
	token := issueToken(t, jwtService, models.RoleStudent)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestJWTAuth_RejectsTokenFromOtherSecret(t *testing.T) {
	router := protectedRouter(t, newTestJWTService(), "")

	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "some-other-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campus-linker-test",
	})
	token := issueToken(t, otherService, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedRouter(t, jwtService, string(models.RoleAdmin))

	tests := []struct {
		name       string
		role       models.RoleType
		wantStatus int
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK},
		{"student forbidden", models.RoleStudent, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
