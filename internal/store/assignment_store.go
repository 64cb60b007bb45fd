package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/planner/internal/model"
)

const assignmentTable = "assignments"

// GetAssignments returns every assignment owned by userID, soonest due first.
func (s *SQLStore) GetAssignments(ctx context.Context, userID string) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	if err := s.listScoped(ctx, &assignments, assignmentTable, userID, "due_date"); err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignment retrieves a single assignment owned by userID.
func (s *SQLStore) GetAssignment(ctx context.Context, id, userID string) (*model.Assignment, error) {
	var a model.Assignment
	if err := s.getScoped(ctx, &a, assignmentTable, id, userID); err != nil {
		return nil, fmt.Errorf("getting assignment %s: %w", id, err)
	}
	return &a, nil
}

// CreateAssignment inserts a new assignment with a generated UUID.
func (s *SQLStore) CreateAssignment(
	ctx context.Context,
	rec model.NewAssignment,
) (*model.Assignment, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return nil, fmt.Errorf("assignment title must not be empty")
	}
	if rec.Category == "" {
		rec.Category = model.CategoryOther
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	err := s.insertRow(ctx, assignmentTable,
		[]string{
			"id", "user_id", "title", "due_date", "completed",
			"category", "created_at", "updated_at",
		},
		[]interface{}{
			id, rec.UserID, rec.Title, rec.DueDate, rec.Completed,
			rec.Category, now, now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	var a model.Assignment
	if err := s.getScoped(ctx, &a, assignmentTable, id, rec.UserID); err != nil {
		return nil, fmt.Errorf("loading assignment %s: %w", id, err)
	}
	return &a, nil
}

// UpdateAssignment applies the non-nil fields of patch to an assignment
// owned by userID.
func (s *SQLStore) UpdateAssignment(
	ctx context.Context,
	id, userID string,
	patch model.AssignmentPatch,
) (*model.Assignment, error) {
	set := &setList{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("assignment title must not be empty")
		}
		set.add("title", *patch.Title)
	}
	if patch.DueDate != nil {
		set.add("due_date", *patch.DueDate)
	}
	if patch.Completed != nil {
		set.add("completed", *patch.Completed)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}

	var a model.Assignment
	if err := s.updateScoped(ctx, &a, assignmentTable, set, id, userID); err != nil {
		return nil, fmt.Errorf("updating assignment %s: %w", id, err)
	}
	return &a, nil
}

// DeleteAssignment removes an assignment owned by userID.
func (s *SQLStore) DeleteAssignment(ctx context.Context, id, userID string) (bool, error) {
	deleted, err := s.deleteScoped(ctx, assignmentTable, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting assignment %s: %w", id, err)
	}
	return deleted, nil
}
