package dto

import (
	"github.com/eduplanhq/eduplan-backend/internal/app/models"
)

// PlanIdentifier optionally scopes a plan by degree.
type PlanIdentifier struct {
	Degree string `json:"degree"`
}

// EducationPlanRequest is the upsert payload. The plan's identity is
// inferred from the first course entry carrying both a program and a
// university name.
type EducationPlanRequest struct {
	EmailAddress     string               `json:"emailaddress" binding:"required,email"`
	Program          []models.CourseEntry `json:"program"`
	UniqueIdentifier *PlanIdentifier      `json:"uniqueIdentifier,omitempty"`
}

// Degree returns the optional degree scope, empty when none was supplied.
func (r *EducationPlanRequest) Degree() string {
	if r.UniqueIdentifier == nil {
		return ""
	}
	return r.UniqueIdentifier.Degree
}

// EducationPlanQuery looks a plan up by its business key.
type EducationPlanQuery struct {
	Email          string `json:"email" binding:"required,email"`
	ProgramName    string `json:"programname" binding:"required"`
	UniversityName string `json:"universityname" binding:"required"`
}

// EducationPlanListQuery lists every plan owned by one user.
type EducationPlanListQuery struct {
	Email string `json:"email" binding:"required,email"`
}

// DeletePlanRequest removes a plan by its business key.
type DeletePlanRequest struct {
	Email            string          `json:"email" binding:"required,email"`
	ProgramName      string          `json:"programname" binding:"required"`
	UniversityName   string          `json:"universityname" binding:"required"`
	UniqueIdentifier *PlanIdentifier `json:"uniqueIdentifier,omitempty"`
}

// Degree returns the optional degree scope, empty when none was supplied.
func (r *DeletePlanRequest) Degree() string {
	if r.UniqueIdentifier == nil {
		return ""
	}
	return r.UniqueIdentifier.Degree
}

// RescheduleRequest appends a reschedule record.
type RescheduleRequest struct {
	EmailAddress string                   `json:"emailaddress" binding:"required,email"`
	Reschedule   []models.RescheduleEntry `json:"reschedule" binding:"required"`
}
