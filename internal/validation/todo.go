package validation

import "github.com/nhle/planner/internal/model"

type todoInput struct {
	Title     *string `json:"title" validate:"required,min=1,max=500"`
	Completed *bool   `json:"completed"`
	DayOfWeek *int    `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type todoPatchInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed"`
	DayOfWeek *int    `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// DecodeNewTodo validates raw as a todo creation payload owned by userID.
func DecodeNewTodo(raw []byte, userID string) (model.NewTodo, error) {
	if userID == "" {
		return model.NewTodo{}, ErrMissingUser
	}

	var in todoInput
	if _, err := decode(raw, &in); err != nil {
		return model.NewTodo{}, err
	}
	trimPtr(in.Title)
	if err := check(&in); err != nil {
		return model.NewTodo{}, err
	}

	return model.NewTodo{
		UserID:    userID,
		Title:     *in.Title,
		Completed: deref(in.Completed, false),
		DayOfWeek: *in.DayOfWeek,
		Category:  deref(in.Category, model.CategoryOther),
		Priority:  deref(in.Priority, model.PriorityMedium),
	}, nil
}

// DecodeTodoPatch validates raw as a partial todo update.
func DecodeTodoPatch(raw []byte) (model.TodoPatch, error) {
	var in todoPatchInput
	n, err := decode(raw, &in)
	if err != nil {
		return model.TodoPatch{}, err
	}
	if n == 0 {
		return model.TodoPatch{}, invalid("no fields to update")
	}
	trimPtr(in.Title)
	if err := check(&in); err != nil {
		return model.TodoPatch{}, err
	}

	return model.TodoPatch{
		Title:     in.Title,
		Completed: in.Completed,
		DayOfWeek: in.DayOfWeek,
		Category:  in.Category,
		Priority:  in.Priority,
	}, nil
}
