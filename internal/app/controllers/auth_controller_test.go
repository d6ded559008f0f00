package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

// stubAuthService returns canned responses for controller tests.
type stubAuthService struct {
	registerResp *dto.AuthResponse
	registerErr  error
	loginResp    *dto.AuthResponse
	loginErr     error
	refreshResp  *dto.TokenResponse
	refreshErr   error
	logoutErr    error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	return s.refreshResp, s.refreshErr
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.logoutErr
}

func authTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/login", controller.Login)
	router.POST("/auth/refresh", controller.RefreshToken)
	router.POST("/auth/logout", controller.Logout)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Created(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &dto.AuthResponse{
			Token: dto.TokenResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600},
			User:  dto.RegistrationResponse{ID: 1, Username: "newuser", Role: "student"},
		},
	}
	router := authTestRouter(svc)

	rec := postJSON(t, router, "/auth/register", dto.RegisterRequest{
		Username: "newuser",
		Password: "password123",
		Email:    "newuser@skylink.edu",
		MobileNo: "9876543210",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Data dto.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.User.Username != "newuser" {
		t.Errorf("response username = %q, want newuser", resp.Data.User.Username)
	}
	if resp.Data.Token.AccessToken == "" {
		t.Error("response is missing the access token")
	}
}

func TestRegister_BindingRejectsShortPassword(t *testing.T) {
	router := authTestRouter(&stubAuthService{})

	rec := postJSON(t, router, "/auth/register", dto.RegisterRequest{
		Username: "newuser",
		Password: "short",
		Email:    "newuser@skylink.edu",
		MobileNo: "9876543210",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := authTestRouter(&stubAuthService{registerErr: apperrors.ErrUsernameExists})

	rec := postJSON(t, router, "/auth/register", dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
		Email:    "taken@skylink.edu",
		MobileNo: "9876543210",
	})

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := authTestRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	rec := postJSON(t, router, "/auth/login", dto.LoginRequest{Username: "admin", Password: "wrong"})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRefreshToken_Revoked(t *testing.T) {
	router := authTestRouter(&stubAuthService{refreshErr: apperrors.ErrTokenRevoked})

	rec := postJSON(t, router, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "revoked-token"})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogout_OK(t *testing.T) {
	router := authTestRouter(&stubAuthService{})

	rec := postJSON(t, router, "/auth/logout", dto.RefreshTokenRequest{RefreshToken: "some-token"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
