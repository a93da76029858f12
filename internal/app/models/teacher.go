package models

import (
	"time"
)

// Teacher defines the teacher model based on the 'teachers' table.
// AverageRating and TotalFeedback are derived from the feedback table and
// recomputed on every feedback insertion; they are never set by callers.
type Teacher struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Department    string    `json:"department" db:"department"`
	Subject       string    `json:"subject" db:"subject"`
	AverageRating float64   `json:"averageRating" db:"average_rating"`
	TotalFeedback int       `json:"totalFeedback" db:"total_feedback"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
