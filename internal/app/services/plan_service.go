package services

import (
	"context"
	"errors"
	"strings"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// PlanStore is the persistence surface the plan service needs
type PlanStore interface {
	ResolveByKey(ctx context.Context, userID int64, programName, universityName, degree string) (*models.EducationPlan, error)
	Replace(ctx context.Context, plan *models.EducationPlan, courses []models.CourseEntry) error
	QueryByProgram(ctx context.Context, programName, universityName string) (*models.EducationPlan, error)
	ListByEmail(ctx context.Context, email string) ([]models.PlanPayload, error)
	DeleteByID(ctx context.Context, planID int64) error
	SaveReschedule(ctx context.Context, userID int64, payload models.ReschedulePayload) (*models.CourseReschedule, error)
}

// UserFinder resolves a user record from an email address
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PlanService handles education plan operations
type PlanService struct {
	plans PlanStore
	users UserFinder
}

// NewPlanService creates a new PlanService
func NewPlanService(plans PlanStore, users UserFinder) *PlanService {
	return &PlanService{plans: plans, users: users}
}

// inferIdentity picks the plan identity from the first course entry that
// carries both a program and a university name.
func inferIdentity(courses []models.CourseEntry) (programName, universityName string, ok bool) {
	for _, entry := range courses {
		program := strings.TrimSpace(entry.Program)
		university := strings.TrimSpace(entry.University)
		if program != "" && university != "" {
			return program, university, true
		}
	}
	return "", "", false
}

func (s *PlanService) findUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err)
	}
	return user, nil
}

// UpsertPlan stores a plan under its inferred identity. An existing plan
// with the same (user, program, university, degree) key is fully replaced:
// the payload is overwritten and the course rows are rebuilt from the
// submitted list, nothing is merged.
func (s *PlanService) UpsertPlan(ctx context.Context, req *dto.EducationPlanRequest) (*models.EducationPlan, bool, error) {
	if len(req.Program) == 0 {
		return nil, false, apperrors.ErrEmptyCourseList
	}

	programName, universityName, ok := inferIdentity(req.Program)
	if !ok {
		return nil, false, apperrors.ErrMissingPlanIdent
	}

	user, err := s.findUser(ctx, req.EmailAddress)
	if err != nil {
		return nil, false, err
	}

	degree := strings.TrimSpace(req.Degree())

	plan, err := s.plans.ResolveByKey(ctx, user.ID, programName, universityName, degree)
	if err != nil {
		return nil, false, apperrors.NewStorageError(err)
	}

	created := plan == nil
	if created {
		plan = &models.EducationPlan{
			UserID:         user.ID,
			ProgramName:    programName,
			UniversityName: universityName,
		}
	}

	plan.Payload = models.PlanPayload{
		Program: req.Program,
		Degree:  degree,
	}

	if err := s.plans.Replace(ctx, plan, req.Program); err != nil {
		logger.Error().Err(err).
			Str("program", programName).
			Str("university", universityName).
			Msg("Error replacing education plan")
		return nil, false, apperrors.NewStorageError(err)
	}

	return plan, created, nil
}

// QueryPlan finds a plan payload by program and university. A missing plan
// is not an error, the payload is simply nil.
func (s *PlanService) QueryPlan(ctx context.Context, query *dto.EducationPlanQuery) (*models.PlanPayload, error) {
	if _, err := s.findUser(ctx, query.Email); err != nil {
		return nil, err
	}

	plan, err := s.plans.QueryByProgram(ctx, strings.TrimSpace(query.ProgramName), strings.TrimSpace(query.UniversityName))
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if plan == nil {
		return nil, nil
	}

	return &plan.Payload, nil
}

// ListPlans returns every plan payload owned by the user, in storage order.
func (s *PlanService) ListPlans(ctx context.Context, email string) ([]models.PlanPayload, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	payloads, err := s.plans.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return payloads, nil
}

// Reschedule appends a reschedule record for the user. Records are
// append-only and are never matched against existing plans.
func (s *PlanService) Reschedule(ctx context.Context, req *dto.RescheduleRequest) (*models.CourseReschedule, error) {
	if len(req.Reschedule) == 0 {
		return nil, apperrors.NewValidationError("reschedule list cannot be empty")
	}

	user, err := s.findUser(ctx, req.EmailAddress)
	if err != nil {
		return nil, err
	}

	entry, err := s.plans.SaveReschedule(ctx, user.ID, models.ReschedulePayload{Reschedule: req.Reschedule})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return entry, nil
}

// DeletePlan removes a plan and its course rows by business key.
func (s *PlanService) DeletePlan(ctx context.Context, req *dto.DeletePlanRequest) error {
	user, err := s.findUser(ctx, req.Email)
	if err != nil {
		return err
	}

	plan, err := s.plans.ResolveByKey(ctx, user.ID,
		strings.TrimSpace(req.ProgramName), strings.TrimSpace(req.UniversityName),
		strings.TrimSpace(req.Degree()))
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if plan == nil {
		return apperrors.ErrPlanNotFound
	}

	if err := s.plans.DeleteByID(ctx, plan.ID); err != nil {
		return apperrors.NewStorageError(err)
	}

	return nil
}
