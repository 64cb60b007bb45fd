package model

import "time"

// DateLayout is the calendar-date format of assignment due dates.
const DateLayout = "2006-01-02"

// Assignment is a dated piece of work with a due date.
type Assignment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	DueDate   string    `json:"dueDate" db:"due_date"`
	Completed bool      `json:"completed" db:"completed"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewAssignment is a validated creation record for an assignment.
type NewAssignment struct {
	UserID    string
	Title     string
	DueDate   string
	Completed bool
	Category  string
}

// AssignmentPatch holds the fields of a partial update.
type AssignmentPatch struct {
	Title     *string
	DueDate   *string
	Completed *bool
	Category  *string
}
