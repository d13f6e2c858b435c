package services

import (
	"context"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

// DashboardCounter is the counting surface the dashboard needs
type DashboardCounter interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountPlans(ctx context.Context) (int64, error)
	CountReschedules(ctx context.Context) (int64, error)
}

// DashboardService aggregates entity counts for the admin dashboard
type DashboardService struct {
	counts DashboardCounter
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(counts DashboardCounter) *DashboardService {
	return &DashboardService{counts: counts}
}

// GetCounts returns entity totals. With no customer profiles yet the
// customer figure falls back to the total user count.
func (s *DashboardService) GetCounts(ctx context.Context) (*dto.DashboardCounts, error) {
	users, err := s.counts.CountUsers(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	customers, err := s.counts.CountCustomers(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if customers == 0 {
		customers = users
	}

	plans, err := s.counts.CountPlans(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	reschedules, err := s.counts.CountReschedules(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return &dto.DashboardCounts{
		Customers:   customers,
		Plans:       plans,
		Reschedules: reschedules,
	}, nil
}
