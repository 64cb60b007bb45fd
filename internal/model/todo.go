package model

import "time"

// Todo is a weekly to-do entry owned by a single user.
type Todo struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Completed bool      `json:"completed" db:"completed"`
	DayOfWeek int       `json:"dayOfWeek" db:"day_of_week"`
	Category  string    `json:"category" db:"category"`
	Priority  string    `json:"priority" db:"priority"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewTodo is a validated creation record. UserID is always supplied by
// the caller layer, never by the client payload.
type NewTodo struct {
	UserID    string
	Title     string
	Completed bool
	DayOfWeek int
	Category  string
	Priority  string
}

// TodoPatch holds the fields of a partial update; nil fields are left as is.
type TodoPatch struct {
	Title     *string
	Completed *bool
	DayOfWeek *int
	Category  *string
	Priority  *string
}
