package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/nhle/planner/internal/model"
)

// SQLStore implements the Store interface on top of sqlx. It runs against
// an embedded SQLite file or a PostgreSQL server; queries are written with
// '?' placeholders and rebound for the active driver.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore opens a connection pool for driver ("sqlite" or "postgres")
// at dsn and runs any pending schema migrations.
func NewSQLStore(driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s db: %w", driver, err)
	}

	if driver == model.DriverSQLite {
		// One connection keeps ":memory:" databases and per-connection
		// pragmas consistent across the pool.
		db.SetMaxOpenConns(1)

		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s db: %w", driver, err)
	}

	s := &SQLStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Ping checks that the backend is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// runMigrations reads the current schema version and applies any
// outstanding migrations in order.
func (s *SQLStore) runMigrations() error {
	if _, err := s.db.Exec(schemaVersionTable); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var currentVersion int
	err := s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// getScoped loads a single row of table matching both id and userID into dest.
func (s *SQLStore) getScoped(ctx context.Context, dest interface{}, table, id, userID string) error {
	query := s.db.Rebind("SELECT * FROM " + table + " WHERE id = ? AND user_id = ?")
	err := s.db.GetContext(ctx, dest, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// listScoped loads every row of table owned by userID into dest.
func (s *SQLStore) listScoped(ctx context.Context, dest interface{}, table, userID, orderBy string) error {
	query := s.db.Rebind(
		"SELECT * FROM " + table + " WHERE user_id = ? ORDER BY " + orderBy + ", id")
	return s.db.SelectContext(ctx, dest, query, userID)
}

// insertRow inserts one row into table.
func (s *SQLStore) insertRow(ctx context.Context, table string, cols []string, args []interface{}) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := s.db.Rebind(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), placeholders,
	))
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// updateScoped applies set to the row of table matching id and userID,
// refreshes updated_at, and loads the updated row into dest. It returns
// ErrNotFound when no row matched.
func (s *SQLStore) updateScoped(
	ctx context.Context,
	dest interface{},
	table string,
	set *setList,
	id, userID string,
) error {
	set.add("updated_at", time.Now().UTC())

	query := s.db.Rebind(fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ? AND user_id = ?",
		table, set.clause(),
	))
	args := append(set.args, id, userID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return s.getScoped(ctx, dest, table, id, userID)
}

// deleteScoped removes the row of table matching id and userID and
// reports whether a row was removed.
func (s *SQLStore) deleteScoped(ctx context.Context, table, id, userID string) (bool, error) {
	query := s.db.Rebind("DELETE FROM " + table + " WHERE id = ? AND user_id = ?")
	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// setList accumulates the column assignments of a partial update.
type setList struct {
	cols []string
	args []interface{}
}

func (s *setList) add(col string, value interface{}) {
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, value)
}

func (s *setList) clause() string {
	return strings.Join(s.cols, ", ")
}
