package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

type fakeCounter struct {
	users       int64
	customers   int64
	plans       int64
	reschedules int64
	err         error
}

func (f *fakeCounter) CountUsers(_ context.Context) (int64, error)     { return f.users, f.err }
func (f *fakeCounter) CountCustomers(_ context.Context) (int64, error) { return f.customers, nil }
func (f *fakeCounter) CountPlans(_ context.Context) (int64, error)     { return f.plans, nil }
func (f *fakeCounter) CountReschedules(_ context.Context) (int64, error) {
	return f.reschedules, nil
}

func TestGetCounts(t *testing.T) {
	svc := NewDashboardService(&fakeCounter{users: 10, customers: 4, plans: 7, reschedules: 2})

	counts, err := svc.GetCounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), counts.Customers)
	assert.Equal(t, int64(7), counts.Plans)
	assert.Equal(t, int64(2), counts.Reschedules)
}

func TestGetCounts_CustomersFallBackToUsers(t *testing.T) {
	svc := NewDashboardService(&fakeCounter{users: 10})

	counts, err := svc.GetCounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), counts.Customers)
	assert.Equal(t, int64(0), counts.Plans)
}

func TestGetCounts_StorageError(t *testing.T) {
	svc := NewDashboardService(&fakeCounter{err: errors.New("connection refused")})

	_, err := svc.GetCounts(context.Background())

	require.ErrorIs(t, err, apperrors.ErrStorageFailure)
}
