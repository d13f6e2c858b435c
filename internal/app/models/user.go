package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleCustomer RoleType = "customer"
)

// User defines the user model based on the 'users' table
type User struct {
	ID            int64      `json:"id" db:"id"`
	Email         string     `json:"email" db:"email"` // stored case-folded, unique
	Password      string     `json:"-" db:"password_hash"`
	FirstName     string     `json:"firstName" db:"first_name"`
	LastName      string     `json:"lastName" db:"last_name"`
	PhoneNumber   *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Role          RoleType   `json:"role" db:"role"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	IsDeactivated bool       `json:"isDeactivated" db:"is_deactivated"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// Customer defines the customer model based on the 'customers' table.
// At most one row per user by convention; the storage layer does not
// enforce it.
type Customer struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	CompanyName *string   `json:"companyName,omitempty" db:"company_name"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
