package dto

import (
	"time"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"omitempty,oneof=admin customer"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the profile projection returned from auth endpoints
type UserProfile struct {
	ID          int64           `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        models.RoleType `json:"role"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
}

// NewUserProfile builds a profile projection from a user model
func NewUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
	}
}

// RegisterResponse is the data payload returned on registration
type RegisterResponse struct {
	BearerToken string      `json:"bearer_token"`
	ExpiresIn   int         `json:"expires_in"`
	Profile     UserProfile `json:"profile"`
}

// LoginResponse is the data payload returned on login
type LoginResponse struct {
	BearerToken string      `json:"bearer_token"`
	ExpiresIn   int         `json:"expires_in"`
	Role        string      `json:"role"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Profile     UserProfile `json:"profile"`
}
