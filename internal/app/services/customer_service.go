package services

import (
	"context"
	"errors"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// CustomerStore is the persistence surface the customer service needs
type CustomerStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context) ([]repositories.CustomerRecord, error)
	DeleteByID(ctx context.Context, customerID int64) error
}

// CustomerService handles customer profile operations. A user has at most
// one profile by convention, so upserts key on the owning user.
type CustomerService struct {
	customers CustomerStore
	users     UserFinder
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers CustomerStore, users UserFinder) *CustomerService {
	return &CustomerService{customers: customers, users: users}
}

// Upsert stores the customer profile of the authenticated user, creating it
// on first save and overwriting the fields afterwards.
func (s *CustomerService) Upsert(ctx context.Context, userEmail string, req *dto.CustomerRequest) (*models.Customer, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err)
	}

	customer, err := s.customers.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if customer == nil {
		customer = &models.Customer{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			Title:       req.Title,
			Notes:       req.Notes,
		}
		if err := s.customers.Create(ctx, customer); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		logger.Info().Int64("customerID", customer.ID).Int64("userID", user.ID).Msg("Customer profile created")
		return customer, nil
	}

	customer.CompanyName = req.CompanyName
	customer.Title = req.Title
	customer.Notes = req.Notes
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return customer, nil
}

// List returns all customer profiles with their user identity fields
func (s *CustomerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	records, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	responses := make([]dto.CustomerResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, dto.CustomerResponse{
			ID:          rec.Customer.ID,
			UserID:      rec.Customer.UserID,
			Email:       rec.User.Email,
			FirstName:   rec.User.FirstName,
			LastName:    rec.User.LastName,
			PhoneNumber: rec.User.PhoneNumber,
			CompanyName: rec.Customer.CompanyName,
			Title:       rec.Customer.Title,
			Notes:       rec.Customer.Notes,
		})
	}

	return responses, nil
}

// Delete removes a customer profile by id
func (s *CustomerService) Delete(ctx context.Context, customerID int64) error {
	err := s.customers.DeleteByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return apperrors.NewStorageError(err)
	}
	return nil
}
