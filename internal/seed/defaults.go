package seed

import "github.com/nhle/planner/internal/model"

// defaultTodos is the starter to-do list. UserID is filled in at seeding time.
var defaultTodos = []model.NewTodo{
	{Title: "Review lecture notes", DayOfWeek: model.Monday, Category: model.CategorySchool, Priority: model.PriorityHigh},
	{Title: "Go for a run", DayOfWeek: model.Tuesday, Category: model.CategoryHealth, Priority: model.PriorityMedium},
	{Title: "Finish problem set", DayOfWeek: model.Wednesday, Category: model.CategorySchool, Priority: model.PriorityHigh},
	{Title: "Prepare for team sync", DayOfWeek: model.Thursday, Category: model.CategoryWork, Priority: model.PriorityMedium},
	{Title: "Yoga class", DayOfWeek: model.Thursday, Category: model.CategoryHealth, Priority: model.PriorityLow},
	{Title: "Read a chapter", DayOfWeek: model.Friday, Category: model.CategoryOther, Priority: model.PriorityLow},
	{Title: "Do laundry", DayOfWeek: model.Saturday, Category: model.CategoryPersonal, Priority: model.PriorityLow},
	{Title: "Update resume", DayOfWeek: model.Saturday, Category: model.CategoryWork, Priority: model.PriorityMedium},
	{Title: "Grocery shopping", DayOfWeek: model.Sunday, Category: model.CategoryPersonal, Priority: model.PriorityMedium},
	{Title: "Call family", DayOfWeek: model.Sunday, Category: model.CategoryPersonal, Priority: model.PriorityLow},
	{Title: "Plan next week", DayOfWeek: model.Sunday, Category: model.CategoryOther, Priority: model.PriorityMedium},
}

// defaultSchedule is a representative Monday to Friday timetable,
// four slots per day.
var defaultSchedule = []model.NewScheduleItem{
	{Title: "Calculus Lecture", Time: "09:00", DayOfWeek: model.Monday, Category: model.CategorySchool},
	{Title: "Chemistry Lab", Time: "11:00", DayOfWeek: model.Monday, Category: model.CategorySchool},
	{Title: "Part-time Shift", Time: "14:00", DayOfWeek: model.Monday, Category: model.CategoryWork},
	{Title: "Gym", Time: "18:00", DayOfWeek: model.Monday, Category: model.CategoryHealth},

	{Title: "Literature Seminar", Time: "09:00", DayOfWeek: model.Tuesday, Category: model.CategorySchool},
	{Title: "Lunch with Friends", Time: "12:00", DayOfWeek: model.Tuesday, Category: model.CategoryPersonal},
	{Title: "Study Group", Time: "15:00", DayOfWeek: model.Tuesday, Category: model.CategorySchool},
	{Title: "Evening Run", Time: "19:00", DayOfWeek: model.Tuesday, Category: model.CategoryHealth},

	{Title: "Calculus Lecture", Time: "09:00", DayOfWeek: model.Wednesday, Category: model.CategorySchool},
	{Title: "Computer Science Lecture", Time: "11:00", DayOfWeek: model.Wednesday, Category: model.CategorySchool},
	{Title: "Part-time Shift", Time: "14:00", DayOfWeek: model.Wednesday, Category: model.CategoryWork},
	{Title: "Gym", Time: "18:00", DayOfWeek: model.Wednesday, Category: model.CategoryHealth},

	{Title: "Literature Seminar", Time: "09:00", DayOfWeek: model.Thursday, Category: model.CategorySchool},
	{Title: "Office Hours", Time: "13:00", DayOfWeek: model.Thursday, Category: model.CategorySchool},
	{Title: "Library Study", Time: "16:00", DayOfWeek: model.Thursday, Category: model.CategorySchool},
	{Title: "Yoga", Time: "19:00", DayOfWeek: model.Thursday, Category: model.CategoryHealth},

	{Title: "Calculus Lecture", Time: "09:00", DayOfWeek: model.Friday, Category: model.CategorySchool},
	{Title: "Computer Science Lab", Time: "11:00", DayOfWeek: model.Friday, Category: model.CategorySchool},
	{Title: "Part-time Shift", Time: "14:00", DayOfWeek: model.Friday, Category: model.CategoryWork},
	{Title: "Movie Night", Time: "20:00", DayOfWeek: model.Friday, Category: model.CategoryPersonal},
}

// defaultAssignment is a starter assignment due a number of days after seeding.
type defaultAssignment struct {
	title    string
	category string
	dueIn    int
}

var defaultAssignments = []defaultAssignment{
	{title: "Calculus Problem Set", category: model.CategorySchool, dueIn: 3},
	{title: "Literature Essay Draft", category: model.CategorySchool, dueIn: 7},
	{title: "Computer Science Project", category: model.CategorySchool, dueIn: 14},
}
