package validation

import "github.com/nhle/planner/internal/model"

type assignmentInput struct {
	Title     *string `json:"title" validate:"required,min=1,max=500"`
	DueDate   *string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Completed *bool   `json:"completed"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
}

type assignmentPatchInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=500"`
	DueDate   *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Completed *bool   `json:"completed"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
}

// DecodeNewAssignment validates raw as an assignment creation payload
// owned by userID.
func DecodeNewAssignment(raw []byte, userID string) (model.NewAssignment, error) {
	if userID == "" {
		return model.NewAssignment{}, ErrMissingUser
	}

	var in assignmentInput
	if _, err := decode(raw, &in); err != nil {
		return model.NewAssignment{}, err
	}
	trimPtr(in.Title)
	trimPtr(in.DueDate)
	if err := check(&in); err != nil {
		return model.NewAssignment{}, err
	}

	return model.NewAssignment{
		UserID:    userID,
		Title:     *in.Title,
		DueDate:   *in.DueDate,
		Completed: deref(in.Completed, false),
		Category:  deref(in.Category, model.CategoryOther),
	}, nil
}

// DecodeAssignmentPatch validates raw as a partial assignment update.
func DecodeAssignmentPatch(raw []byte) (model.AssignmentPatch, error) {
	var in assignmentPatchInput
	n, err := decode(raw, &in)
	if err != nil {
		return model.AssignmentPatch{}, err
	}
	if n == 0 {
		return model.AssignmentPatch{}, invalid("no fields to update")
	}
	trimPtr(in.Title)
	trimPtr(in.DueDate)
	if err := check(&in); err != nil {
		return model.AssignmentPatch{}, err
	}

	return model.AssignmentPatch{
		Title:     in.Title,
		DueDate:   in.DueDate,
		Completed: in.Completed,
		Category:  in.Category,
	}, nil
}
