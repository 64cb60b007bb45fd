package validation

import "github.com/nhle/planner/internal/model"

type scheduleInput struct {
	Title     *string `json:"title" validate:"required,min=1,max=500"`
	Time      *string `json:"time" validate:"required,hhmm"`
	DayOfWeek *int    `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
	Completed *bool   `json:"completed"`
}

type schedulePatchInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=500"`
	Time      *string `json:"time" validate:"omitempty,hhmm"`
	DayOfWeek *int    `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	Category  *string `json:"category" validate:"omitempty,oneof=school work personal health other"`
	Completed *bool   `json:"completed"`
}

// DecodeNewScheduleItem validates raw as a schedule item creation payload
// owned by userID.
func DecodeNewScheduleItem(raw []byte, userID string) (model.NewScheduleItem, error) {
	if userID == "" {
		return model.NewScheduleItem{}, ErrMissingUser
	}

	var in scheduleInput
	if _, err := decode(raw, &in); err != nil {
		return model.NewScheduleItem{}, err
	}
	trimPtr(in.Title)
	trimPtr(in.Time)
	if err := check(&in); err != nil {
		return model.NewScheduleItem{}, err
	}

	return model.NewScheduleItem{
		UserID:    userID,
		Title:     *in.Title,
		Time:      *in.Time,
		DayOfWeek: *in.DayOfWeek,
		Category:  deref(in.Category, model.CategoryOther),
		Completed: deref(in.Completed, false),
	}, nil
}

// DecodeScheduleItemPatch validates raw as a partial schedule item update.
func DecodeScheduleItemPatch(raw []byte) (model.ScheduleItemPatch, error) {
	var in schedulePatchInput
	n, err := decode(raw, &in)
	if err != nil {
		return model.ScheduleItemPatch{}, err
	}
	if n == 0 {
		return model.ScheduleItemPatch{}, invalid("no fields to update")
	}
	trimPtr(in.Title)
	trimPtr(in.Time)
	if err := check(&in); err != nil {
		return model.ScheduleItemPatch{}, err
	}

	return model.ScheduleItemPatch{
		Title:     in.Title,
		Time:      in.Time,
		DayOfWeek: in.DayOfWeek,
		Category:  in.Category,
		Completed: in.Completed,
	}, nil
}
