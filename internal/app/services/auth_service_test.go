package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/auth"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users       map[string]*models.User
	nextID      int64
	lastLoginID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLoginID = userID
	return nil
}

func newAuthFixture() (*AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "eduplan-test",
	})
	return NewAuthService(store, jwtService), store
}

func registerReq(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		Password:  "Sup3rSecret!",
	}
}

func TestRegister_CaseFoldsEmail(t *testing.T) {
	svc, store := newAuthFixture()

	resp, err := svc.Register(context.Background(), registerReq("  Alice@Example.COM "))
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.Profile.Email)
	_, ok := store.users["alice@example.com"]
	assert.True(t, ok)
	assert.NotEmpty(t, resp.BearerToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestRegister_DefaultsToCustomerRole(t *testing.T) {
	svc, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	assert.Equal(t, models.RoleCustomer, resp.Profile.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	// Different casing still collides with the stored address.
	_, err = svc.Register(context.Background(), registerReq("ALICE@example.com"))
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	svc, store := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	user := store.users["alice@example.com"]
	require.NotNil(t, user)
	assert.NotEqual(t, "Sup3rSecret!", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "Sup3rSecret!"))
}

func TestLogin_Success(t *testing.T) {
	svc, store := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Alice@Example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BearerToken)
	assert.Equal(t, "customer", resp.Role)
	assert.Equal(t, "Alice", resp.FirstName)
	assert.Equal(t, store.users["alice@example.com"].ID, store.lastLoginID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Indistinguishable from a wrong password.
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, store := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	store.users["alice@example.com"].IsDeactivated = true

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	})
	require.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
