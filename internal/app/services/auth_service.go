package services

import (
	"context"
	"errors"
	"strings"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/auth"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// UserStore is the persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// AuthService handles registration, login and token issuing
type AuthService struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwt *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates a user account and signs them in. Emails are case-folded
// before storage so the token subject always round-trips to the stored
// address.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, apperrors.NewStorageError(err)
	}

	role := models.RoleCustomer
	if req.Role != "" {
		role = models.RoleType(req.Role)
	}

	var phone *string
	if p := strings.TrimSpace(req.PhoneNumber); p != "" {
		phone = &p
	}

	user := &models.User{
		Email:       email,
		Password:    hash,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: phone,
		Role:        role,
		IsActive:    true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.NewStorageError(err)
	}

	token, expiresIn, err := s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Error generating token after registration")
		return nil, apperrors.NewStorageError(err)
	}

	return &dto.RegisterResponse{
		BearerToken: token,
		ExpiresIn:   expiresIn,
		Profile:     dto.NewUserProfile(user),
	}, nil
}

// Login verifies credentials and issues a bearer token. Wrong email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStorageError(err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive || user.IsDeactivated {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// Sign-in still succeeds when the timestamp write fails.
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	token, expiresIn, err := s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Error generating token on login")
		return nil, apperrors.NewStorageError(err)
	}

	return &dto.LoginResponse{
		BearerToken: token,
		ExpiresIn:   expiresIn,
		Role:        string(user.Role),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Profile:     dto.NewUserProfile(user),
	}, nil
}

// GetUserByEmail loads a user profile by email
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err)
	}
	return user, nil
}
