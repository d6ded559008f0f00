package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/auth"
)

// stubRegistrationStore keeps accounts in a map keyed by username.
type stubRegistrationStore struct {
	accounts map[string]*models.Registration
	nextID   int64
}

func (s *stubRegistrationStore) Create(_ context.Context, registration *models.Registration) error {
	s.nextID++
	registration.ID = s.nextID
	s.accounts[registration.Username] = registration
	return nil
}

func (s *stubRegistrationStore) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	for _, registration := range s.accounts {
		if registration.ID == id {
			return registration, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *stubRegistrationStore) GetByUsername(_ context.Context, username string) (*models.Registration, error) {
	registration, ok := s.accounts[username]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return registration, nil
}

func (s *stubRegistrationStore) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := s.accounts[username]
	return ok, nil
}

// stubTokenStore keeps refresh tokens in a map keyed by token value.
type stubTokenStore struct {
	owners map[string]int64
}

func (s *stubTokenStore) CreateToken(_ context.Context, token string, registrationID int64, _ time.Time) error {
	s.owners[token] = registrationID
	return nil
}

func (s *stubTokenStore) GetTokenOwner(_ context.Context, token string) (int64, error) {
	owner, ok := s.owners[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	return owner, nil
}

func (s *stubTokenStore) RevokeToken(_ context.Context, token string) error {
	delete(s.owners, token)
	return nil
}

func authServiceFixture(t *testing.T) (AuthService, *stubRegistrationStore, *stubTokenStore) {
	t.Helper()

	hashed, err := auth.HashPassword("correct-horse-1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	registrations := &stubRegistrationStore{
		accounts: map[string]*models.Registration{
			"asha.verma": {
				ID:       1,
				Username: "asha.verma",
				Password: hashed,
				Email:    "asha@skylink.edu",
				MobileNo: "9876543210",
				Role:     models.RoleStudent,
			},
		},
		nextID: 1,
	}
	tokens := &stubTokenStore{owners: map[string]int64{}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "auth-service-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campus-linker-test",
	})

	return NewAuthService(registrations, tokens, jwtService, zerolog.Nop()), registrations, tokens
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"correct credentials", "asha.verma", "correct-horse-1", nil},
		{"wrong password", "asha.verma", "wrong-password", apperrors.ErrInvalidCredentials},
		{"unknown username", "nobody", "correct-horse-1", apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, tokens := authServiceFixture(t)

			resp, err := svc.Login(context.Background(), &dto.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				if len(tokens.owners) != 0 {
					t.Errorf("Login() stored %d refresh tokens on failure, want 0", len(tokens.owners))
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if resp.Token.AccessToken == "" {
				t.Error("Login() returned empty access token")
			}
			if resp.User.Username != tt.username {
				t.Errorf("Login() user = %q, want %q", resp.User.Username, tt.username)
			}
			if owner, ok := tokens.owners[resp.Token.RefreshToken]; !ok || owner != resp.User.ID {
				t.Errorf("Login() refresh token owner = %d (stored %v), want %d", owner, ok, resp.User.ID)
			}
		})
	}
}

func TestLogin_DoesNotEchoPasswordHash(t *testing.T) {
	svc, registrations, _ := authServiceFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "asha.verma",
		Password: "correct-horse-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	stored := registrations.accounts["asha.verma"]
	if resp.User.Email != stored.Email || resp.User.MobileNo != stored.MobileNo {
		t.Errorf("Login() user = %+v, want contacts from %+v", resp.User, stored)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := authServiceFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha.verma",
		Password: "another-pass-1",
		Email:    "duplicate@skylink.edu",
		MobileNo: "9876543299",
	})
	if !errors.Is(err, apperrors.ErrUsernameExists) {
		t.Fatalf("Register() error = %v, want %v", err, apperrors.ErrUsernameExists)
	}
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	svc, _, tokens := authServiceFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "asha.verma",
		Password: "correct-horse-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	rotated, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if rotated.RefreshToken == resp.Token.RefreshToken {
		t.Error("RefreshToken() returned the presented token, want a new one")
	}
	if _, ok := tokens.owners[resp.Token.RefreshToken]; ok {
		t.Error("RefreshToken() left the presented token valid, want it revoked")
	}

	if _, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken); !errors.Is(err, apperrors.ErrTokenNotFound) {
		t.Errorf("RefreshToken() reuse error = %v, want %v", err, apperrors.ErrTokenNotFound)
	}
}
