package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/planner/internal/model"
)

// GetUser retrieves a user by ID, or ErrNotFound.
func (s *SQLStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, s.db.Rebind("SELECT * FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return &u, nil
}

// UpsertUser inserts the user if absent; otherwise it overwrites every
// mutable field and refreshes updated_at. created_at is kept from the
// first insert.
func (s *SQLStore) UpsertUser(ctx context.Context, in model.UpsertUser) (*model.User, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("user id must not be empty")
	}
	now := time.Now().UTC()

	query := s.db.Rebind(`
		INSERT INTO users (
			id, email, first_name, last_name, profile_image_url, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			profile_image_url = excluded.profile_image_url,
			updated_at = excluded.updated_at`)

	_, err := s.db.ExecContext(ctx, query,
		in.ID, in.Email, in.FirstName, in.LastName, in.ProfileImageURL, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting user %s: %w", in.ID, err)
	}
	return s.GetUser(ctx, in.ID)
}
