package services

import (
	"context"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

// ReferenceService serves the read-only country and state lookups
type ReferenceService struct {
	reference *repositories.ReferenceRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(reference *repositories.ReferenceRepository) *ReferenceService {
	return &ReferenceService{reference: reference}
}

// ListCountries returns all countries
func (s *ReferenceService) ListCountries(ctx context.Context) ([]models.Country, error) {
	countries, err := s.reference.ListCountries(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return countries, nil
}

// ListStates returns the states of one country. An unknown country id
// yields an empty list.
func (s *ReferenceService) ListStates(ctx context.Context, countryID int64) ([]models.State, error) {
	states, err := s.reference.ListStates(ctx, countryID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return states, nil
}
