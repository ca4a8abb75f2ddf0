package models

import (
	"time"
)

// Task status values.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DueDateLayout is the wire and storage format for due dates. Lexical order
// of this layout matches calendar order.
const DueDateLayout = "2006-01-02"

// Task is a unit of work owned by a user. UserID is a value match against
// User.UserID, not a foreign key; orphaned tasks are permitted.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	DueDate     *string   `gorm:"type:varchar(10)" json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
