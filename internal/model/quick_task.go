package model

import "time"

// QuickTask is an undated, unscheduled task.
type QuickTask struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Completed bool      `json:"completed" db:"completed"`
	Priority  string    `json:"priority" db:"priority"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewQuickTask is a validated creation record for a quick task.
type NewQuickTask struct {
	UserID    string
	Title     string
	Completed bool
	Priority  string
}

// QuickTaskPatch holds the fields of a partial update.
type QuickTaskPatch struct {
	Title     *string
	Completed *bool
	Priority  *string
}
