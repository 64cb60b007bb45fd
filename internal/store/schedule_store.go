package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/planner/internal/model"
)

const scheduleTable = "schedule_items"

// GetScheduleItems returns every schedule item owned by userID, ordered
// by day of week and time of day.
func (s *SQLStore) GetScheduleItems(ctx context.Context, userID string) ([]model.ScheduleItem, error) {
	items := []model.ScheduleItem{}
	if err := s.listScoped(ctx, &items, scheduleTable, userID, "day_of_week, time_of_day"); err != nil {
		return nil, fmt.Errorf("querying schedule items: %w", err)
	}
	return items, nil
}

// GetScheduleItem retrieves a single schedule item owned by userID.
func (s *SQLStore) GetScheduleItem(ctx context.Context, id, userID string) (*model.ScheduleItem, error) {
	var item model.ScheduleItem
	if err := s.getScoped(ctx, &item, scheduleTable, id, userID); err != nil {
		return nil, fmt.Errorf("getting schedule item %s: %w", id, err)
	}
	return &item, nil
}

// CreateScheduleItem inserts a new schedule item with a generated UUID.
func (s *SQLStore) CreateScheduleItem(
	ctx context.Context,
	rec model.NewScheduleItem,
) (*model.ScheduleItem, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return nil, fmt.Errorf("schedule item title must not be empty")
	}
	if rec.Category == "" {
		rec.Category = model.CategoryOther
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	err := s.insertRow(ctx, scheduleTable,
		[]string{
			"id", "user_id", "title", "time_of_day", "day_of_week",
			"category", "completed", "created_at", "updated_at",
		},
		[]interface{}{
			id, rec.UserID, rec.Title, rec.Time, rec.DayOfWeek,
			rec.Category, rec.Completed, now, now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating schedule item: %w", err)
	}

	var item model.ScheduleItem
	if err := s.getScoped(ctx, &item, scheduleTable, id, rec.UserID); err != nil {
		return nil, fmt.Errorf("loading schedule item %s: %w", id, err)
	}
	return &item, nil
}

// UpdateScheduleItem applies the non-nil fields of patch to a schedule
// item owned by userID.
func (s *SQLStore) UpdateScheduleItem(
	ctx context.Context,
	id, userID string,
	patch model.ScheduleItemPatch,
) (*model.ScheduleItem, error) {
	set := &setList{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("schedule item title must not be empty")
		}
		set.add("title", *patch.Title)
	}
	if patch.Time != nil {
		set.add("time_of_day", *patch.Time)
	}
	if patch.DayOfWeek != nil {
		set.add("day_of_week", *patch.DayOfWeek)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Completed != nil {
		set.add("completed", *patch.Completed)
	}

	var item model.ScheduleItem
	if err := s.updateScoped(ctx, &item, scheduleTable, set, id, userID); err != nil {
		return nil, fmt.Errorf("updating schedule item %s: %w", id, err)
	}
	return &item, nil
}

// DeleteScheduleItem removes a schedule item owned by userID.
func (s *SQLStore) DeleteScheduleItem(ctx context.Context, id, userID string) (bool, error) {
	deleted, err := s.deleteScoped(ctx, scheduleTable, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting schedule item %s: %w", id, err)
	}
	return deleted, nil
}
