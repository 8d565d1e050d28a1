// Package storage provides SQLite implementations of the storage ports.
// MindMinute keeps nothing across restarts, so the application only ever
// opens the in-memory database; the journal lives as long as the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/mindminute/internal/ports"
	"modernc.org/sqlite"
)

// timestampLayout sorts lexically in the same order as the instants it encodes.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db           *sql.DB
	checkinRepo  ports.CheckinRepository
	exerciseRepo ports.ExerciseRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New opens a SQLite journal at dsn and creates the schema.
func New(dsn string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	storage := &sqliteStorage{
		db:           db,
		checkinRepo:  newCheckinRepository(db),
		exerciseRepo: newExerciseRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates the session-scoped in-memory journal.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Checkins returns the check-in repository.
func (s *sqliteStorage) Checkins() ports.CheckinRepository {
	return s.checkinRepo
}

// Exercises returns the exercise run repository.
func (s *sqliteStorage) Exercises() ports.ExerciseRepository {
	return s.exerciseRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checkins (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		day TEXT NOT NULL,
		clock TEXT NOT NULL,
		mood TEXT NOT NULL,
		score INTEGER NOT NULL,
		logged_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_checkins_day ON checkins(day);
	CREATE INDEX IF NOT EXISTS idx_checkins_mood ON checkins(mood);

	CREATE TABLE IF NOT EXISTS exercise_runs (
		id TEXT PRIMARY KEY NOT NULL,
		kind TEXT NOT NULL,
		length_ms INTEGER NOT NULL,
		status TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		ticks_served INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON exercise_runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON exercise_runs(status);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == 2067 || code == 1555 // SQLITE_CONSTRAINT_UNIQUE, SQLITE_CONSTRAINT_PRIMARYKEY
}
