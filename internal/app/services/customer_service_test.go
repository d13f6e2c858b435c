package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

// fakeCustomerStore is an in-memory CustomerStore keyed by user id.
type fakeCustomerStore struct {
	byUserID map[int64]*models.Customer
	nextID   int64
	deleted  int64
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byUserID: map[int64]*models.Customer{}}
}

func (f *fakeCustomerStore) GetByUserID(_ context.Context, userID int64) (*models.Customer, error) {
	return f.byUserID[userID], nil
}

func (f *fakeCustomerStore) Create(_ context.Context, customer *models.Customer) error {
	f.nextID++
	customer.ID = f.nextID
	f.byUserID[customer.UserID] = customer
	return nil
}

func (f *fakeCustomerStore) Update(_ context.Context, customer *models.Customer) error {
	f.byUserID[customer.UserID] = customer
	return nil
}

func (f *fakeCustomerStore) List(_ context.Context) ([]repositories.CustomerRecord, error) {
	records := []repositories.CustomerRecord{}
	for _, customer := range f.byUserID {
		records = append(records, repositories.CustomerRecord{Customer: *customer})
	}
	return records, nil
}

func (f *fakeCustomerStore) DeleteByID(_ context.Context, customerID int64) error {
	for userID, customer := range f.byUserID {
		if customer.ID == customerID {
			delete(f.byUserID, userID)
			f.deleted = customerID
			return nil
		}
	}
	return repositories.ErrNotFound
}

func strPtr(s string) *string { return &s }

func newCustomerFixture() (*CustomerService, *fakeCustomerStore) {
	store := newFakeCustomerStore()
	finder := &fakeUserFinder{users: map[string]*models.User{
		"alice@example.com": {ID: 1, Email: "alice@example.com", FirstName: "Alice"},
	}}
	return NewCustomerService(store, finder), store
}

func TestCustomerUpsert_CreatesProfile(t *testing.T) {
	svc, store := newCustomerFixture()

	customer, err := svc.Upsert(context.Background(), "alice@example.com", &dto.CustomerRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		CompanyName: strPtr("Acme"),
		Title:       strPtr("Advisor"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, int64(1), customer.UserID)
	assert.Equal(t, "Acme", *customer.CompanyName)
	assert.Equal(t, "Advisor", *customer.Title)
	assert.Len(t, store.byUserID, 1)
}

func TestCustomerUpsert_OverwritesExistingProfile(t *testing.T) {
	svc, store := newCustomerFixture()

	first, err := svc.Upsert(context.Background(), "alice@example.com", &dto.CustomerRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		CompanyName: strPtr("Acme"),
		Notes:       strPtr("first save"),
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), "alice@example.com", &dto.CustomerRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		CompanyName: strPtr("Globex"),
	})
	require.NoError(t, err)

	// Same row, fields fully overwritten.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Globex", *second.CompanyName)
	assert.Nil(t, second.Notes)
	assert.Len(t, store.byUserID, 1)
}

func TestCustomerUpsert_UnknownUser(t *testing.T) {
	svc, _ := newCustomerFixture()

	_, err := svc.Upsert(context.Background(), "nobody@example.com", &dto.CustomerRequest{
		FirstName: "Nobody",
		LastName:  "Here",
		Email:     "nobody@example.com",
	})

	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCustomerDelete(t *testing.T) {
	svc, store := newCustomerFixture()

	customer, err := svc.Upsert(context.Background(), "alice@example.com", &dto.CustomerRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), customer.ID))
	assert.Equal(t, customer.ID, store.deleted)
}

func TestCustomerDelete_Missing(t *testing.T) {
	svc, _ := newCustomerFixture()

	err := svc.Delete(context.Background(), 42)

	require.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
}
