package testutil

import (
	"context"
	"testing"

	"github.com/nhle/planner/internal/model"
	"github.com/nhle/planner/internal/store"
)

// NewTestStore creates an in-memory SQLStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s, err := store.NewSQLStore(model.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestUser upserts a user with the given id so owned rows can reference it.
func NewTestUser(t *testing.T, s store.Store, id string) *model.User {
	t.Helper()

	email := id + "@example.com"
	u, err := s.UpsertUser(context.Background(), model.UpsertUser{ID: id, Email: &email})
	if err != nil {
		t.Fatalf("creating test user %s: %v", id, err)
	}
	return u
}
