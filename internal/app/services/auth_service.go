package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
	"github.com/skylink-edu/campus-linker/internal/pkg/auth"
	"github.com/skylink-edu/campus-linker/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// RegistrationStore is the account lookup surface the auth service needs.
// *repositories.RegistrationRepository satisfies it.
type RegistrationStore interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	GetByUsername(ctx context.Context, username string) (*models.Registration, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// TokenStore is the refresh token surface the auth service needs.
// *repositories.TokenRepository satisfies it.
type TokenStore interface {
	CreateToken(ctx context.Context, token string, registrationID int64, expiryDate time.Time) error
	GetTokenOwner(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	registrationRepo RegistrationStore
	tokenRepo        TokenStore
	jwtService       *auth.JWTService
	logger           zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	registrationRepo RegistrationStore,
	tokenRepo TokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		registrationRepo: registrationRepo,
		tokenRepo:        tokenRepo,
		jwtService:       jwtService,
		logger:           logger,
	}
}

// validateRegistration validates account data before database operations
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: registration is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(req.Password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(req.Email)) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Mobile.MatchString(req.MobileNo) {
		return fmt.Errorf("%w: mobile number must be 10 digits", apperrors.ErrValidationFailed)
	}

	return nil
}

// Register creates a new account and issues its first token pair.
// New accounts always get the student role; the seed creates the
// administrator.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.registrationRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	registration := &models.Registration{
		Username: req.Username,
		Password: hashedPassword,
		Email:    strings.ToLower(req.Email),
		MobileNo: req.MobileNo,
		Role:     models.RoleStudent,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("registrationID", registration.ID).
		Str("username", registration.Username).
		Msg("New account registered")

	return s.issueTokens(ctx, registration)
}

// Login verifies credentials and issues a token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	registration, err := s.registrationRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	if !auth.CheckPassword(registration.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, registration)
}

// RefreshToken rotates a refresh token and issues a fresh token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	registrationID, err := s.tokenRepo.GetTokenOwner(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	registration, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	// Rotate: the presented token is dead as soon as a new one exists.
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(registration)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, newRefreshToken, registration.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          newRefreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

// Logout revokes a refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenNotFound
	}

	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, registration *models.Registration) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(registration)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, registration.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.RegistrationResponse{
			ID:       registration.ID,
			Username: registration.Username,
			Email:    registration.Email,
			MobileNo: registration.MobileNo,
			Role:     string(registration.Role),
		},
	}, nil
}
