package validation

import "github.com/nhle/planner/internal/model"

type quickTaskInput struct {
	Title     *string `json:"title" validate:"required,min=1,max=500"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type quickTaskPatchInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// DecodeNewQuickTask validates raw as a quick task creation payload owned
// by userID.
func DecodeNewQuickTask(raw []byte, userID string) (model.NewQuickTask, error) {
	if userID == "" {
		return model.NewQuickTask{}, ErrMissingUser
	}

	var in quickTaskInput
	if _, err := decode(raw, &in); err != nil {
		return model.NewQuickTask{}, err
	}
	trimPtr(in.Title)
	if err := check(&in); err != nil {
		return model.NewQuickTask{}, err
	}

	return model.NewQuickTask{
		UserID:    userID,
		Title:     *in.Title,
		Completed: deref(in.Completed, false),
		Priority:  deref(in.Priority, model.PriorityMedium),
	}, nil
}

// DecodeQuickTaskPatch validates raw as a partial quick task update.
func DecodeQuickTaskPatch(raw []byte) (model.QuickTaskPatch, error) {
	var in quickTaskPatchInput
	n, err := decode(raw, &in)
	if err != nil {
		return model.QuickTaskPatch{}, err
	}
	if n == 0 {
		return model.QuickTaskPatch{}, invalid("no fields to update")
	}
	trimPtr(in.Title)
	if err := check(&in); err != nil {
		return model.QuickTaskPatch{}, err
	}

	return model.QuickTaskPatch{
		Title:     in.Title,
		Completed: in.Completed,
		Priority:  in.Priority,
	}, nil
}
