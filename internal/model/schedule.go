package model

import "time"

// ScheduleItem is a recurring weekly time slot, e.g. a class or a shift.
type ScheduleItem struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Time      string    `json:"time" db:"time_of_day"`
	DayOfWeek int       `json:"dayOfWeek" db:"day_of_week"`
	Category  string    `json:"category" db:"category"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewScheduleItem is a validated creation record for a schedule item.
type NewScheduleItem struct {
	UserID    string
	Title     string
	Time      string
	DayOfWeek int
	Category  string
	Completed bool
}

// ScheduleItemPatch holds the fields of a partial update.
type ScheduleItemPatch struct {
	Title     *string
	Time      *string
	DayOfWeek *int
	Category  *string
	Completed *bool
}
