package services

import (
	"context"
	"encoding/json"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

// IntakeService records intake form submissions verbatim
type IntakeService struct {
	intake *repositories.IntakeRepository
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(intake *repositories.IntakeRepository) *IntakeService {
	return &IntakeService{intake: intake}
}

// Submit appends one submission and returns its id. The payload schema is
// owned by the frontend, only JSON well-formedness is required.
func (s *IntakeService) Submit(ctx context.Context, payload json.RawMessage) (*models.IntakeSubmission, error) {
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, apperrors.NewValidationError("request body must be valid JSON")
	}

	submission := &models.IntakeSubmission{Payload: payload}
	if err := s.intake.Insert(ctx, submission); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return submission, nil
}
