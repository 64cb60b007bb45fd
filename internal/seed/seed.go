// Package seed populates a newly observed user's workspace with a starter
// set of todos, schedule items and assignments.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nhle/planner/internal/model"
)

// Store is the subset of the entity store the seeder writes through.
type Store interface {
	HasTodos(ctx context.Context, userID string) (bool, error)
	CreateTodo(ctx context.Context, rec model.NewTodo) (*model.Todo, error)
	CreateScheduleItem(ctx context.Context, rec model.NewScheduleItem) (*model.ScheduleItem, error)
	CreateAssignment(ctx context.Context, rec model.NewAssignment) (*model.Assignment, error)
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithClock overrides the time source used to compute assignment due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// Seeder inserts the default data set for users that have none.
type Seeder struct {
	store  Store
	logger *logrus.Entry
	now    func() time.Time
}

// New creates a Seeder writing through st.
func New(st Store, logger *logrus.Entry, opts ...Option) *Seeder {
	s := &Seeder{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedUserData inserts the default todos, schedule items and assignments
// for userID unless the user already owns at least one todo.
//
// Only todos are checked, so a seed that failed part-way through the
// schedule or assignments is never completed by a later call. Two
// concurrent first calls for the same user may both insert the full set.
func (s *Seeder) SeedUserData(ctx context.Context, userID string) error {
	log := s.logger.WithField("userId", userID)

	seeded, err := s.store.HasTodos(ctx, userID)
	if err != nil {
		return fmt.Errorf("checking existing data: %w", err)
	}
	if seeded {
		log.Debug("user already seeded, skipping")
		return nil
	}

	log.Info("seeding default data")

	for _, rec := range defaultTodos {
		rec.UserID = userID
		if _, err := s.store.CreateTodo(ctx, rec); err != nil {
			return fmt.Errorf("seeding todo %q: %w", rec.Title, err)
		}
	}

	for _, rec := range defaultSchedule {
		rec.UserID = userID
		if _, err := s.store.CreateScheduleItem(ctx, rec); err != nil {
			return fmt.Errorf("seeding schedule item %q: %w", rec.Title, err)
		}
	}

	today := s.now()
	for _, d := range defaultAssignments {
		rec := model.NewAssignment{
			UserID:   userID,
			Title:    d.title,
			DueDate:  today.AddDate(0, 0, d.dueIn).Format(model.DateLayout),
			Category: d.category,
		}
		if _, err := s.store.CreateAssignment(ctx, rec); err != nil {
			return fmt.Errorf("seeding assignment %q: %w", rec.Title, err)
		}
	}

	log.WithFields(logrus.Fields{
		"todos":       len(defaultTodos),
		"schedule":    len(defaultSchedule),
		"assignments": len(defaultAssignments),
	}).Info("seeded default data")

	return nil
}
