package store

import (
	"context"
	"errors"

	"github.com/nhle/planner/internal/model"
)

// ErrNotFound reports that no row matched both the id and the owning user.
// A row owned by another user is indistinguishable from a missing one.
var ErrNotFound = errors.New("not found")

// Store defines the user-scoped persistence interface for users and the
// four task-like entities. Every per-item operation filters by both the
// entity id and the owning user id.
type Store interface {
	// === Users ===

	GetUser(ctx context.Context, id string) (*model.User, error)
	UpsertUser(ctx context.Context, u model.UpsertUser) (*model.User, error)

	// === Todos ===

	GetTodos(ctx context.Context, userID string) ([]model.Todo, error)
	GetTodo(ctx context.Context, id, userID string) (*model.Todo, error)
	HasTodos(ctx context.Context, userID string) (bool, error)
	CreateTodo(ctx context.Context, rec model.NewTodo) (*model.Todo, error)
	UpdateTodo(ctx context.Context, id, userID string, patch model.TodoPatch) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id, userID string) (bool, error)

	// === Schedule items ===

	GetScheduleItems(ctx context.Context, userID string) ([]model.ScheduleItem, error)
	GetScheduleItem(ctx context.Context, id, userID string) (*model.ScheduleItem, error)
	CreateScheduleItem(ctx context.Context, rec model.NewScheduleItem) (*model.ScheduleItem, error)
	UpdateScheduleItem(ctx context.Context, id, userID string, patch model.ScheduleItemPatch) (*model.ScheduleItem, error)
	DeleteScheduleItem(ctx context.Context, id, userID string) (bool, error)

	// === Assignments ===

	GetAssignments(ctx context.Context, userID string) ([]model.Assignment, error)
	GetAssignment(ctx context.Context, id, userID string) (*model.Assignment, error)
	CreateAssignment(ctx context.Context, rec model.NewAssignment) (*model.Assignment, error)
	UpdateAssignment(ctx context.Context, id, userID string, patch model.AssignmentPatch) (*model.Assignment, error)
	DeleteAssignment(ctx context.Context, id, userID string) (bool, error)

	// === Quick tasks ===

	GetQuickTasks(ctx context.Context, userID string) ([]model.QuickTask, error)
	GetQuickTask(ctx context.Context, id, userID string) (*model.QuickTask, error)
	CreateQuickTask(ctx context.Context, rec model.NewQuickTask) (*model.QuickTask, error)
	UpdateQuickTask(ctx context.Context, id, userID string, patch model.QuickTaskPatch) (*model.QuickTask, error)
	DeleteQuickTask(ctx context.Context, id, userID string) (bool, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
