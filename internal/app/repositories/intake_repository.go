package repositories

import (
	"context"
	"fmt"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// IntakeRepository stores raw intake form submissions. Payloads are kept
// verbatim as submitted, the schema is owned by the frontend.
type IntakeRepository struct {
	db *db.PostgresDB
}

// NewIntakeRepository creates a new IntakeRepository
func NewIntakeRepository(database *db.PostgresDB) *IntakeRepository {
	return &IntakeRepository{db: database}
}

// Insert appends one intake submission
func (r *IntakeRepository) Insert(ctx context.Context, submission *models.IntakeSubmission) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO intake_submissions (payload)
		VALUES ($1)
		RETURNING id, submitted_at`,
		[]byte(submission.Payload)).Scan(&submission.ID, &submission.SubmittedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting intake submission")
		return fmt.Errorf("error saving intake submission: %w", err)
	}

	return nil
}
