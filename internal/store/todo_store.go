package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/planner/internal/model"
)

const todoTable = "todos"

// GetTodos returns every todo owned by userID, ordered by day of week.
func (s *SQLStore) GetTodos(ctx context.Context, userID string) ([]model.Todo, error) {
	todos := []model.Todo{}
	if err := s.listScoped(ctx, &todos, todoTable, userID, "day_of_week, created_at"); err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	return todos, nil
}

// GetTodo retrieves a single todo by ID. It returns ErrNotFound unless
// the todo is owned by userID.
func (s *SQLStore) GetTodo(ctx context.Context, id, userID string) (*model.Todo, error) {
	var todo model.Todo
	if err := s.getScoped(ctx, &todo, todoTable, id, userID); err != nil {
		return nil, fmt.Errorf("getting todo %s: %w", id, err)
	}
	return &todo, nil
}

// HasTodos reports whether userID owns at least one todo.
func (s *SQLStore) HasTodos(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := s.db.Rebind("SELECT EXISTS (SELECT 1 FROM todos WHERE user_id = ?)")
	if err := s.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("checking todos for user %s: %w", userID, err)
	}
	return exists, nil
}

// CreateTodo inserts a new todo with a generated UUID, defaulting
// category to "other" and priority to "medium".
func (s *SQLStore) CreateTodo(ctx context.Context, rec model.NewTodo) (*model.Todo, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return nil, fmt.Errorf("todo title must not be empty")
	}
	if rec.Category == "" {
		rec.Category = model.CategoryOther
	}
	if rec.Priority == "" {
		rec.Priority = model.PriorityMedium
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	err := s.insertRow(ctx, todoTable,
		[]string{
			"id", "user_id", "title", "completed", "day_of_week",
			"category", "priority", "created_at", "updated_at",
		},
		[]interface{}{
			id, rec.UserID, rec.Title, rec.Completed, rec.DayOfWeek,
			rec.Category, rec.Priority, now, now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	var todo model.Todo
	if err := s.getScoped(ctx, &todo, todoTable, id, rec.UserID); err != nil {
		return nil, fmt.Errorf("loading todo %s: %w", id, err)
	}
	return &todo, nil
}

// UpdateTodo applies the non-nil fields of patch to the todo identified
// by id and owned by userID. It returns ErrNotFound when no such row exists.
func (s *SQLStore) UpdateTodo(
	ctx context.Context,
	id, userID string,
	patch model.TodoPatch,
) (*model.Todo, error) {
	set := &setList{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("todo title must not be empty")
		}
		set.add("title", *patch.Title)
	}
	if patch.Completed != nil {
		set.add("completed", *patch.Completed)
	}
	if patch.DayOfWeek != nil {
		set.add("day_of_week", *patch.DayOfWeek)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Priority != nil {
		set.add("priority", *patch.Priority)
	}

	var todo model.Todo
	if err := s.updateScoped(ctx, &todo, todoTable, set, id, userID); err != nil {
		return nil, fmt.Errorf("updating todo %s: %w", id, err)
	}
	return &todo, nil
}

// DeleteTodo removes the todo identified by id and owned by userID.
// It reports false when no such row existed.
func (s *SQLStore) DeleteTodo(ctx context.Context, id, userID string) (bool, error) {
	deleted, err := s.deleteScoped(ctx, todoTable, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting todo %s: %w", id, err)
	}
	return deleted, nil
}
