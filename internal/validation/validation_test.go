package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/planner/internal/model"
)

func requireInvalid(t *testing.T, err error, contains string) {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *Error, got %v", err)
	assert.Contains(t, verr.Message, contains)
}

func TestDecodeNewTodo(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		rec, err := DecodeNewTodo([]byte(`{"title":"Read","dayOfWeek":1}`), "u1")
		require.NoError(t, err)
		assert.Equal(t, model.NewTodo{
			UserID:    "u1",
			Title:     "Read",
			Completed: false,
			DayOfWeek: 1,
			Category:  model.CategoryOther,
			Priority:  model.PriorityMedium,
		}, rec)
	})

	t.Run("sunday is a valid day", func(t *testing.T) {
		rec, err := DecodeNewTodo([]byte(`{"title":"Rest","dayOfWeek":0,"priority":"low"}`), "u1")
		require.NoError(t, err)
		assert.Equal(t, 0, rec.DayOfWeek)
		assert.Equal(t, model.PriorityLow, rec.Priority)
	})

	tests := []struct {
		name     string
		payload  string
		contains string
	}{
		{"missing title", `{"dayOfWeek":1}`, "title is required"},
		{"blank title", `{"title":"   ","dayOfWeek":1}`, "title must not be empty"},
		{"missing day", `{"title":"Read"}`, "dayOfWeek is required"},
		{"day out of range", `{"title":"Read","dayOfWeek":7}`, "dayOfWeek must be at most 6"},
		{"negative day", `{"title":"Read","dayOfWeek":-1}`, "dayOfWeek must be at least 0"},
		{"wrong type", `{"title":"Read","dayOfWeek":"monday"}`, "dayOfWeek must be an integer"},
		{"bad category", `{"title":"Read","dayOfWeek":1,"category":"fun"}`, "category must be one of"},
		{"bad priority", `{"title":"Read","dayOfWeek":1,"priority":"urgent"}`, "priority must be one of"},
		{"unknown field", `{"title":"Read","dayOfWeek":1,"color":"red"}`, "unknown field color"},
		{"keys are case sensitive", `{"TITLE":"Read","DAYOFWEEK":2}`, "unknown field DAYOFWEEK"},
		{"owner in payload", `{"title":"Read","dayOfWeek":1,"userId":"mallory"}`, "userId must not be supplied"},
		{"malformed", `{"title":`, "malformed JSON body"},
		{"empty body", ``, "malformed JSON body"},
		{"not an object", `["Read"]`, "must be a JSON object"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeNewTodo([]byte(tc.payload), "u1")
			requireInvalid(t, err, tc.contains)
		})
	}

	t.Run("aggregates violations", func(t *testing.T) {
		_, err := DecodeNewTodo([]byte(`{}`), "u1")
		requireInvalid(t, err, "title is required")
		requireInvalid(t, err, "dayOfWeek is required")
	})

	t.Run("requires caller identity", func(t *testing.T) {
		_, err := DecodeNewTodo([]byte(`{"title":"Read","dayOfWeek":1}`), "")
		assert.ErrorIs(t, err, ErrMissingUser)
	})
}

func TestDecodeTodoPatch(t *testing.T) {
	patch, err := DecodeTodoPatch([]byte(`{"completed":true}`))
	require.NoError(t, err)
	require.NotNil(t, patch.Completed)
	assert.True(t, *patch.Completed)
	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.DayOfWeek)

	patch, err = DecodeTodoPatch([]byte(`{"dayOfWeek":0,"title":" Walk "}`))
	require.NoError(t, err)
	assert.Equal(t, 0, *patch.DayOfWeek)
	assert.Equal(t, "Walk", *patch.Title)

	_, err = DecodeTodoPatch([]byte(`{}`))
	requireInvalid(t, err, "no fields to update")

	_, err = DecodeTodoPatch([]byte(`{"title":null}`))
	requireInvalid(t, err, "no fields to update")

	_, err = DecodeTodoPatch([]byte(`{"title":""}`))
	requireInvalid(t, err, "title must not be empty")

	_, err = DecodeTodoPatch([]byte(`{"userId":"mallory"}`))
	requireInvalid(t, err, "userId must not be supplied")

	_, err = DecodeTodoPatch([]byte(`{"id":"other"}`))
	requireInvalid(t, err, "unknown field id")

	_, err = DecodeTodoPatch([]byte(`{"Completed":true}`))
	requireInvalid(t, err, "unknown field Completed")
}

func TestDecodeNewScheduleItem(t *testing.T) {
	rec, err := DecodeNewScheduleItem([]byte(`{"title":"Lecture","time":"09:00","dayOfWeek":1}`), "u1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", rec.Time)
	assert.Equal(t, model.CategoryOther, rec.Category)
	assert.False(t, rec.Completed)
	assert.Equal(t, "u1", rec.UserID)

	_, err = DecodeNewScheduleItem([]byte(`{"title":"Lecture","time":"9am","dayOfWeek":1}`), "u1")
	requireInvalid(t, err, "time must use the HH:MM format")

	_, err = DecodeNewScheduleItem([]byte(`{"title":"Lecture","dayOfWeek":1}`), "u1")
	requireInvalid(t, err, "time is required")

	patch, err := DecodeScheduleItemPatch([]byte(`{"time":"13:45"}`))
	require.NoError(t, err)
	assert.Equal(t, "13:45", *patch.Time)

	_, err = DecodeScheduleItemPatch([]byte(`{"time":"25:00"}`))
	requireInvalid(t, err, "time must use the HH:MM format")

	for _, bad := range []string{"9:30", "09:3", "09:30:00", "0930"} {
		_, err = DecodeNewScheduleItem([]byte(`{"title":"Lecture","time":"`+bad+`","dayOfWeek":1}`), "u1")
		requireInvalid(t, err, "time must use the HH:MM format")

		_, err = DecodeScheduleItemPatch([]byte(`{"time":"` + bad + `"}`))
		requireInvalid(t, err, "time must use the HH:MM format")
	}
}

func TestDecodeNewAssignment(t *testing.T) {
	rec, err := DecodeNewAssignment([]byte(`{"title":"Essay","dueDate":"2026-11-01","category":"school"}`), "u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-01", rec.DueDate)
	assert.Equal(t, model.CategorySchool, rec.Category)

	_, err = DecodeNewAssignment([]byte(`{"title":"Essay","dueDate":"11/01/2026"}`), "u1")
	requireInvalid(t, err, "dueDate must use the YYYY-MM-DD format")

	_, err = DecodeNewAssignment([]byte(`{"title":"Essay","dueDate":"2026-11-01","completed":"yes"}`), "u1")
	requireInvalid(t, err, "completed must be a boolean")

	patch, err := DecodeAssignmentPatch([]byte(`{"completed":false}`))
	require.NoError(t, err)
	assert.False(t, *patch.Completed)
}

func TestDecodeNewQuickTask(t *testing.T) {
	rec, err := DecodeNewQuickTask([]byte(`{"title":"Buy milk"}`), "u1")
	require.NoError(t, err)
	assert.Equal(t, model.NewQuickTask{
		UserID:   "u1",
		Title:    "Buy milk",
		Priority: model.PriorityMedium,
	}, rec)

	_, err = DecodeNewQuickTask([]byte(`{"title":"Buy milk","userId":"u2"}`), "u1")
	requireInvalid(t, err, "userId must not be supplied")

	patch, err := DecodeQuickTaskPatch([]byte(`{"priority":"high"}`))
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, *patch.Priority)

	_, err = DecodeQuickTaskPatch([]byte(`{"priority":"asap"}`))
	requireInvalid(t, err, "priority must be one of: low, medium, high")
}
