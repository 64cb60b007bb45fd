package model

// Category tags shared by todos, schedule items and assignments.
const (
	CategorySchool   = "school"
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryHealth   = "health"
	CategoryOther    = "other"
)

// Priority tags shared by todos and quick tasks.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories lists every accepted category tag.
var Categories = []string{
	CategorySchool, CategoryWork, CategoryPersonal, CategoryHealth, CategoryOther,
}

// Priorities lists every accepted priority tag, lowest first.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Days of the week as stored in day_of_week columns (0 = Sunday).
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)
