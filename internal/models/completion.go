package models

import "time"

const (
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// CompletionRecord stores at most one row per (step, calendar date); a later
// action on the same day overwrites the existing row.
type CompletionRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	StepID      uint      `gorm:"not null;uniqueIndex:uidx_step_date" json:"step_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_step_date" json:"date"`
	Status      string    `gorm:"not null" json:"status"`
	ProductUsed string    `json:"product_used,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
