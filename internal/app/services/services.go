package services

import (
	"context"

	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
)

// Services defined in this package:
// - AuthService: registration, login and token issuing
// - PlanService: education plan upsert/query/list/reschedule/delete
// - UniversityService: College Scorecard proxy (search, get, compare)
// - CustomerService: customer profile upsert/list/delete
// - DashboardService: entity counts for the admin dashboard
// - ReferenceService: read-only country and state lookups
// - IntakeService: intake form submissions
// - NotifyService: advisor email/SMS notifications

// repoCounter satisfies DashboardCounter from the repository layer.
type repoCounter struct {
	repos *repositories.Repositories
}

// NewRepoCounter adapts the repositories into a DashboardCounter
func NewRepoCounter(repos *repositories.Repositories) DashboardCounter {
	return &repoCounter{repos: repos}
}

func (c *repoCounter) CountUsers(ctx context.Context) (int64, error) {
	return c.repos.UserRepository.CountUsers(ctx)
}

func (c *repoCounter) CountCustomers(ctx context.Context) (int64, error) {
	return c.repos.CustomerRepository.Count(ctx)
}

func (c *repoCounter) CountPlans(ctx context.Context) (int64, error) {
	return c.repos.PlanRepository.CountPlans(ctx)
}

func (c *repoCounter) CountReschedules(ctx context.Context) (int64, error) {
	return c.repos.PlanRepository.CountReschedules(ctx)
}
