package models

import (
	"encoding/json"
	"time"
)

// IntakeSubmission is an append-only intake-form record. The payload is
// arbitrary JSON and is stored untouched.
type IntakeSubmission struct {
	ID          int64           `json:"id" db:"id"`
	SubmittedAt time.Time       `json:"submittedAt" db:"submitted_at"`
	Payload     json.RawMessage `json:"payload" db:"payload"`
}
