package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/planner/internal/model"
)

const quickTaskTable = "quick_tasks"

// GetQuickTasks returns every quick task owned by userID, oldest first.
func (s *SQLStore) GetQuickTasks(ctx context.Context, userID string) ([]model.QuickTask, error) {
	tasks := []model.QuickTask{}
	if err := s.listScoped(ctx, &tasks, quickTaskTable, userID, "created_at"); err != nil {
		return nil, fmt.Errorf("querying quick tasks: %w", err)
	}
	return tasks, nil
}

// GetQuickTask retrieves a single quick task owned by userID.
func (s *SQLStore) GetQuickTask(ctx context.Context, id, userID string) (*model.QuickTask, error) {
	var task model.QuickTask
	if err := s.getScoped(ctx, &task, quickTaskTable, id, userID); err != nil {
		return nil, fmt.Errorf("getting quick task %s: %w", id, err)
	}
	return &task, nil
}

// CreateQuickTask inserts a new quick task, defaulting priority to "medium".
func (s *SQLStore) CreateQuickTask(
	ctx context.Context,
	rec model.NewQuickTask,
) (*model.QuickTask, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return nil, fmt.Errorf("quick task title must not be empty")
	}
	if rec.Priority == "" {
		rec.Priority = model.PriorityMedium
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	err := s.insertRow(ctx, quickTaskTable,
		[]string{"id", "user_id", "title", "completed", "priority", "created_at", "updated_at"},
		[]interface{}{
			id, rec.UserID, rec.Title, rec.Completed, rec.Priority, now, now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating quick task: %w", err)
	}

	var task model.QuickTask
	if err := s.getScoped(ctx, &task, quickTaskTable, id, rec.UserID); err != nil {
		return nil, fmt.Errorf("loading quick task %s: %w", id, err)
	}
	return &task, nil
}

// UpdateQuickTask applies the non-nil fields of patch to a quick task
// owned by userID.
func (s *SQLStore) UpdateQuickTask(
	ctx context.Context,
	id, userID string,
	patch model.QuickTaskPatch,
) (*model.QuickTask, error) {
	set := &setList{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("quick task title must not be empty")
		}
		set.add("title", *patch.Title)
	}
	if patch.Completed != nil {
		set.add("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		set.add("priority", *patch.Priority)
	}

	var task model.QuickTask
	if err := s.updateScoped(ctx, &task, quickTaskTable, set, id, userID); err != nil {
		return nil, fmt.Errorf("updating quick task %s: %w", id, err)
	}
	return &task, nil
}

// DeleteQuickTask removes a quick task owned by userID.
func (s *SQLStore) DeleteQuickTask(ctx context.Context, id, userID string) (bool, error) {
	deleted, err := s.deleteScoped(ctx, quickTaskTable, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting quick task %s: %w", id, err)
	}
	return deleted, nil
}
