package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// NormalizeDegree prepares a degree label for comparison: surrounding
// whitespace is trimmed and the case is folded. The normalized form is a
// comparison key only and is never stored.
func NormalizeDegree(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// PlanRepository handles education plan database operations. A plan is
// logically keyed by (user_id, program_name, university_name, degree); the
// degree half of the key lives inside the JSON payload, so degree matching
// happens here rather than in SQL. There is no storage-level unique
// constraint over the full key — two concurrent replaces for the same key
// can race, last commit wins.
type PlanRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(database *db.PostgresDB) *PlanRepository {
	return &PlanRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// planColumns is the full projection of an education_plans row.
var planColumns = []string{"id", "user_id", "program_name", "university_name", "payload", "created_at", "updated_at"}

func scanPlan(row pgx.Row) (*models.EducationPlan, error) {
	plan := &models.EducationPlan{}
	var payload []byte
	err := row.Scan(&plan.ID, &plan.UserID, &plan.ProgramName, &plan.UniversityName,
		&payload, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &plan.Payload); err != nil {
		return nil, fmt.Errorf("error decoding plan payload: %w", err)
	}
	return plan, nil
}

// GetPlansByIdentity returns every plan matching (user, program, university)
// in storage order, ignoring degree.
func (r *PlanRepository) GetPlansByIdentity(ctx context.Context, userID int64, programName, universityName string) ([]*models.EducationPlan, error) {
	sql, args, err := r.sb.Select(planColumns...).
		From("education_plans").
		Where(squirrel.Eq{
			"user_id":         userID,
			"program_name":    programName,
			"university_name": universityName,
		}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get plans by identity SQL")
		return nil, fmt.Errorf("failed to build get plans query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get plans by identity query")
		return nil, fmt.Errorf("error querying plans: %w", err)
	}
	defer rows.Close()

	plans := []*models.EducationPlan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning plan row")
			return nil, fmt.Errorf("error scanning plan row: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}

	return plans, nil
}

// ResolveByKey resolves a plan by its composite business key. With no
// degree the first stored plan wins. With a degree only an exact normalized
// match is returned — a plan without a degree never satisfies a degree
// lookup. A nil plan with a nil error means no match.
func (r *PlanRepository) ResolveByKey(ctx context.Context, userID int64, programName, universityName, degree string) (*models.EducationPlan, error) {
	plans, err := r.GetPlansByIdentity(ctx, userID, programName, universityName)
	if err != nil {
		return nil, err
	}

	return selectPlan(plans, degree), nil
}

// selectPlan applies the degree half of the plan key. Degree-less lookups
// take the first stored plan; degree lookups take the first exact
// normalized match and never fall back to a degree-less plan.
func selectPlan(plans []*models.EducationPlan, degree string) *models.EducationPlan {
	if degree == "" {
		if len(plans) == 0 {
			return nil
		}
		return plans[0]
	}

	target := NormalizeDegree(degree)
	for _, plan := range plans {
		if plan.Payload.Degree != "" && NormalizeDegree(plan.Payload.Degree) == target {
			return plan
		}
	}

	return nil
}

// Replace persists a plan and its full child course list in one
// transaction. An existing plan (non-zero id) has its payload overwritten
// and every child row deleted before the submitted list is inserted; a new
// plan is created first. Any failure rolls the whole write back.
func (r *PlanRepository) Replace(ctx context.Context, plan *models.EducationPlan, courses []models.CourseEntry) error {
	payload, err := json.Marshal(plan.Payload)
	if err != nil {
		return fmt.Errorf("error encoding plan payload: %w", err)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if plan.ID == 0 {
			err := tx.QueryRow(ctx, `
				INSERT INTO education_plans (user_id, program_name, university_name, payload)
				VALUES ($1, $2, $3, $4)
				RETURNING id, created_at, updated_at`,
				plan.UserID, plan.ProgramName, plan.UniversityName, payload).
				Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
			if err != nil {
				logger.Error().Err(err).Msg("Error inserting education plan")
				return fmt.Errorf("error creating plan: %w", err)
			}
		} else {
			_, err := tx.Exec(ctx, `
				UPDATE education_plans
				SET payload = $1, updated_at = NOW()
				WHERE id = $2`,
				payload, plan.ID)
			if err != nil {
				logger.Error().Err(err).Int64("planID", plan.ID).Msg("Error updating education plan payload")
				return fmt.Errorf("error updating plan: %w", err)
			}

			_, err = tx.Exec(ctx, `DELETE FROM program_courses WHERE education_plan_id = $1`, plan.ID)
			if err != nil {
				logger.Error().Err(err).Int64("planID", plan.ID).Msg("Error deleting plan courses")
				return fmt.Errorf("error clearing plan courses: %w", err)
			}
		}

		for _, entry := range courses {
			var schedule []byte
			if entry.Schedule != nil {
				schedule, err = json.Marshal(entry.Schedule)
				if err != nil {
					return fmt.Errorf("error encoding course schedule: %w", err)
				}
			}

			_, err := tx.Exec(ctx, `
				INSERT INTO program_courses
					(education_plan_id, year_label, semester_label, course_code, course_name,
					 credits, prerequisite, corequisite, schedule)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				plan.ID, entry.Year, entry.Semester, entry.Code, entry.CourseName,
				entry.Credits, entry.Prerequisite, entry.Corequisite, schedule)
			if err != nil {
				logger.Error().Err(err).Int64("planID", plan.ID).Msg("Error inserting plan course")
				return fmt.Errorf("error inserting plan course: %w", err)
			}
		}

		return nil
	})
}

// QueryByProgram finds a plan by program and university name alone. A nil
// plan with a nil error means no match.
func (r *PlanRepository) QueryByProgram(ctx context.Context, programName, universityName string) (*models.EducationPlan, error) {
	sql, args, err := r.sb.Select(planColumns...).
		From("education_plans").
		Where(squirrel.Eq{
			"program_name":    programName,
			"university_name": universityName,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building query plan SQL")
		return nil, fmt.Errorf("failed to build query plan query: %w", err)
	}

	plan, err := scanPlan(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error scanning queried plan row")
		return nil, fmt.Errorf("error querying plan: %w", err)
	}

	return plan, nil
}

// ListByEmail returns the payloads of every plan owned by the user with the
// given email, in storage order. Child course rows are not joined.
func (r *PlanRepository) ListByEmail(ctx context.Context, email string) ([]models.PlanPayload, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT p.payload
		FROM education_plans p
		JOIN users u ON u.id = p.user_id
		WHERE u.email = $1`,
		strings.ToLower(email))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list plans query")
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	defer rows.Close()

	payloads := []models.PlanPayload{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning plan payload: %w", err)
		}
		var payload models.PlanPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("error decoding plan payload: %w", err)
		}
		payloads = append(payloads, payload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan payloads: %w", err)
	}

	return payloads, nil
}

// DeleteByID deletes a plan together with its course rows (cascade).
func (r *PlanRepository) DeleteByID(ctx context.Context, planID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM education_plans WHERE id = $1`, planID)
	if err != nil {
		logger.Error().Err(err).Int64("planID", planID).Msg("Error deleting education plan")
		return fmt.Errorf("error deleting plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SaveReschedule appends one reschedule record. Requests are never matched
// against or merged with earlier rows.
func (r *PlanRepository) SaveReschedule(ctx context.Context, userID int64, payload models.ReschedulePayload) (*models.CourseReschedule, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding reschedule payload: %w", err)
	}

	entry := &models.CourseReschedule{UserID: userID, Payload: payload}
	err = r.db.Pool.QueryRow(ctx, `
		INSERT INTO course_reschedules (user_id, payload)
		VALUES ($1, $2)
		RETURNING id, requested_at`,
		userID, raw).Scan(&entry.ID, &entry.RequestedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error inserting reschedule record")
		return nil, fmt.Errorf("error saving reschedule: %w", err)
	}

	return entry, nil
}

// CountPlans counts all stored plans
func (r *PlanRepository) CountPlans(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(id) FROM education_plans`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting plans: %w", err)
	}
	return count, nil
}

// CountReschedules counts all stored reschedule records
func (r *PlanRepository) CountReschedules(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(id) FROM course_reschedules`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting reschedules: %w", err)
	}
	return count, nil
}
