package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/skylink-edu/campus-linker/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campus-linker-test",
	})
}

func testRegistration() *models.Registration {
	return &models.Registration{
		ID:       42,
		Username: "student",
		Role:     models.RoleStudent,
	}
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testRegistration())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if access == "" {
		t.Error("GenerateTokenPair() returned empty access token")
	}
	if refresh == "" {
		t.Error("GenerateTokenPair() returned empty refresh token")
	}
	if expiresIn != 3600 {
		t.Errorf("GenerateTokenPair() expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != int64((720 * time.Hour).Seconds()) {
		t.Errorf("GenerateTokenPair() refreshExpiresIn = %d", refreshExpiresIn)
	}

	// Refresh tokens are opaque and must be unique per issue
	_, refresh2, _, _, err := svc.GenerateTokenPair(testRegistration())
	if err != nil {
		t.Fatalf("GenerateTokenPair() second call error = %v", err)
	}
	if refresh == refresh2 {
		t.Error("GenerateTokenPair() produced duplicate refresh tokens")
	}
}

func TestValidateAndExtractClaims(t *testing.T) {
	svc := testJWTService(time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(testRegistration())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.RegistrationID != 42 {
		t.Errorf("claims.RegistrationID = %d, want 42", claims.RegistrationID)
	}
	if claims.Username != "student" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "student")
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleStudent)
	}
}

func TestValidateAndExtractClaims_Invalid(t *testing.T) {
	svc := testJWTService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not-a-jwt"},
		{"tampered token", "eyJhbGciOiJIUzI1NiJ9.e30.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAndExtractClaims(tt.token); err == nil {
				t.Error("ValidateAndExtractClaims() succeeded for invalid token")
			}
		})
	}
}

func TestValidateAndExtractClaims_WrongSecret(t *testing.T) {
	issuer := testJWTService(time.Hour)
	access, _, _, _, err := issuer.GenerateTokenPair(testRegistration())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campus-linker-test",
	})

	if _, err := other.ValidateAndExtractClaims(access); err == nil {
		t.Error("ValidateAndExtractClaims() accepted token signed with another secret")
	}
}

func TestValidateAndExtractClaims_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	access, _, _, _, err := svc.GenerateTokenPair(testRegistration())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	_, err = svc.ValidateAndExtractClaims(access)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateAndExtractClaims() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestGetRefreshTokenExpiry(t *testing.T) {
	svc := testJWTService(time.Hour)

	expiry := svc.GetRefreshTokenExpiry()
	expected := time.Now().Add(720 * time.Hour)
	if diff := expiry.Sub(expected); diff > time.Minute || diff < -time.Minute {
		t.Errorf("GetRefreshTokenExpiry() = %v, want about %v", expiry, expected)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc123", "abc123", false},
		{"bare token", "abc123", "abc123", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
