package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// checkinRepository implements ports.CheckinRepository using SQLite.
type checkinRepository struct {
	db *sql.DB
}

func newCheckinRepository(db *sql.DB) ports.CheckinRepository {
	return &checkinRepository{db: db}
}

// Save appends a check-in to the journal.
func (r *checkinRepository) Save(ctx context.Context, entry domain.MoodEntry) error {
	query := `
		INSERT INTO checkins (id, day, clock, mood, score, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Date,
		entry.Time,
		string(entry.Mood),
		entry.Score,
		formatTimestamp(entry.LoggedAt),
	)
	if isUniqueConstraintError(err) {
		return fmt.Errorf("check-in %s: %w", entry.ID, domain.ErrAlreadyRecorded)
	}
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	return nil
}

// FindAll returns every check-in in insertion order.
func (r *checkinRepository) FindAll(ctx context.Context) ([]domain.MoodEntry, error) {
	query := `
		SELECT id, day, clock, mood, score, logged_at
		FROM checkins
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.MoodEntry
	for rows.Next() {
		var e domain.MoodEntry
		var mood, loggedAt string
		if err := rows.Scan(&e.ID, &e.Date, &e.Time, &mood, &e.Score, &loggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		e.Mood = domain.Mood(mood)
		// A bad timestamp leaves LoggedAt zero; Date is still authoritative.
		e.LoggedAt, _ = parseTimestamp(loggedAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountByMood returns the number of check-ins per mood.
func (r *checkinRepository) CountByMood(ctx context.Context) (map[domain.Mood]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT mood, COUNT(*) FROM checkins GROUP BY mood`)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[domain.Mood]int)
	for rows.Next() {
		var mood string
		var n int
		if err := rows.Scan(&mood, &n); err != nil {
			return nil, fmt.Errorf("failed to scan mood count: %w", err)
		}
		counts[domain.Mood(mood)] = n
	}

	return counts, rows.Err()
}

// AverageScore returns the mean score, or 0 with no check-ins.
func (r *checkinRepository) AverageScore(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `SELECT AVG(score) FROM checkins`).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average scores: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// DistinctDates returns every calendar day with a check-in, oldest first.
func (r *checkinRepository) DistinctDates(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT day FROM checkins ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-in dates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var dates []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan check-in date: %w", err)
		}
		parsed, err := time.Parse(domain.DateLayout, day)
		if err != nil {
			continue
		}
		dates = append(dates, parsed)
	}

	return dates, rows.Err()
}
