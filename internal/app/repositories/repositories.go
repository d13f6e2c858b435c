package repositories

import (
	"github.com/eduplanhq/eduplan-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	PlanRepository      *PlanRepository
	CustomerRepository  *CustomerRepository
	ReferenceRepository *ReferenceRepository
	IntakeRepository    *IntakeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(database.Pool),
		PlanRepository:      NewPlanRepository(database),
		CustomerRepository:  NewCustomerRepository(database),
		ReferenceRepository: NewReferenceRepository(database),
		IntakeRepository:    NewIntakeRepository(database),
	}
}
