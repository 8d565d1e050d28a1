package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// exerciseRepository implements ports.ExerciseRepository using SQLite.
type exerciseRepository struct {
	db *sql.DB
}

func newExerciseRepository(db *sql.DB) ports.ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Save records a new run.
func (r *exerciseRepository) Save(ctx context.Context, run *domain.ExerciseRun) error {
	query := `
		INSERT INTO exercise_runs (id, kind, length_ms, status, started_at, finished_at, ticks_served)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		string(run.Kind),
		run.Length.Milliseconds(),
		string(run.Status),
		formatTimestamp(run.StartedAt),
		nullableTimestamp(run.FinishedAt),
		run.TicksServed,
	)
	if isUniqueConstraintError(err) {
		return fmt.Errorf("exercise run %s: %w", run.ID, domain.ErrAlreadyRecorded)
	}
	if err != nil {
		return fmt.Errorf("failed to save exercise run: %w", err)
	}

	return nil
}

// Update stores the run's latest status.
func (r *exerciseRepository) Update(ctx context.Context, run *domain.ExerciseRun) error {
	query := `
		UPDATE exercise_runs
		SET status = ?, finished_at = ?, ticks_served = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(run.Status),
		nullableTimestamp(run.FinishedAt),
		run.TicksServed,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exercise run: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
	}

	return nil
}

// FindRecent returns runs started at or after since, newest first.
func (r *exerciseRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.ExerciseRun, error) {
	query := `
		SELECT id, kind, length_ms, status, started_at, finished_at, ticks_served
		FROM exercise_runs
		WHERE started_at >= ?
		ORDER BY started_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, formatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent exercise runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*domain.ExerciseRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// CountByStatus returns how many runs ended with status.
func (r *exerciseRepository) CountByStatus(ctx context.Context, status domain.RunStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_runs WHERE status = ?`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count exercise runs: %w", err)
	}
	return n, nil
}

func scanRun(rows *sql.Rows) (*domain.ExerciseRun, error) {
	var run domain.ExerciseRun
	var kind, status, startedAt string
	var lengthMs int64
	var finishedAt sql.NullString

	if err := rows.Scan(&run.ID, &kind, &lengthMs, &status, &startedAt, &finishedAt, &run.TicksServed); err != nil {
		return nil, fmt.Errorf("failed to scan exercise run: %w", err)
	}

	run.Kind = domain.ExerciseKind(kind)
	run.Status = domain.RunStatus(status)
	run.Length = time.Duration(lengthMs) * time.Millisecond

	started, err := parseTimestamp(startedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at for run %s: %w", run.ID, err)
	}
	run.StartedAt = started

	if finishedAt.Valid {
		if finished, err := parseTimestamp(finishedAt.String); err == nil {
			run.FinishedAt = &finished
		}
	}

	return &run, nil
}

func nullableTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTimestamp(*t)
	return &s
}
