package models

import (
	"time"
)

// ScheduleBlock is the schedule sub-object attached to a course entry.
type ScheduleBlock struct {
	Day  *string `json:"day,omitempty"`
	Time *string `json:"time,omitempty"`
}

// CourseEntry is one submitted course row. The same shape is stored
// verbatim inside the plan's JSON payload, so the json tags here define
// the wire format as well.
type CourseEntry struct {
	Program      string         `json:"program,omitempty"`
	University   string         `json:"university,omitempty"`
	Year         string         `json:"year,omitempty"`
	Semester     string         `json:"semester,omitempty"`
	Code         string         `json:"code,omitempty"`
	CourseName   string         `json:"courseName,omitempty"`
	Credits      *int           `json:"credits,omitempty"`
	Prerequisite string         `json:"prerequisite,omitempty"`
	Corequisite  string         `json:"corequisite,omitempty"`
	Schedule     *ScheduleBlock `json:"schedule,omitempty"`
}

// PlanPayload is the denormalized plan document. It is the authoritative
// read path; ProgramCourse rows are a secondary index over the same data.
type PlanPayload struct {
	Program []CourseEntry `json:"program"`
	Degree  string        `json:"degree,omitempty"`
}

// EducationPlan defines the plan model based on the 'education_plans' table.
// Logically keyed by (user_id, program_name, university_name, degree) where
// degree lives inside the payload and is compared after normalization.
type EducationPlan struct {
	ID             int64       `json:"id" db:"id"`
	UserID         int64       `json:"userId" db:"user_id"`
	ProgramName    string      `json:"programName" db:"program_name"`
	UniversityName string      `json:"universityName" db:"university_name"`
	Payload        PlanPayload `json:"payload" db:"payload"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// ProgramCourse is one child course row owned by a plan. Rows are deleted
// and recreated wholesale on every plan replace, never diffed.
type ProgramCourse struct {
	ID              int64          `json:"id" db:"id"`
	EducationPlanID int64          `json:"educationPlanId" db:"education_plan_id"`
	YearLabel       string         `json:"yearLabel" db:"year_label"`
	SemesterLabel   string         `json:"semesterLabel" db:"semester_label"`
	CourseCode      string         `json:"courseCode" db:"course_code"`
	CourseName      string         `json:"courseName" db:"course_name"`
	Credits         *int           `json:"credits,omitempty" db:"credits"`
	Prerequisite    string         `json:"prerequisite" db:"prerequisite"`
	Corequisite     string         `json:"corequisite" db:"corequisite"`
	Schedule        *ScheduleBlock `json:"schedule,omitempty" db:"schedule"`
}

// RescheduleEntry is one requested schedule change.
type RescheduleEntry struct {
	Day      string `json:"day,omitempty"`
	FromTime string `json:"fromtime,omitempty"`
	ToTime   string `json:"totime,omitempty"`
}

// ReschedulePayload wraps the submitted entries for storage.
type ReschedulePayload struct {
	Reschedule []RescheduleEntry `json:"reschedule"`
}

// CourseReschedule is an append-only record of requested schedule changes.
type CourseReschedule struct {
	ID          int64             `json:"id" db:"id"`
	UserID      int64             `json:"userId" db:"user_id"`
	RequestedAt time.Time         `json:"requestedAt" db:"requested_at"`
	Payload     ReschedulePayload `json:"payload" db:"payload"`
}
