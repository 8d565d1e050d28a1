// Package domain contains the core entities of MindMinute: moods and their
// catalog, check-ins and the session mood log, streaks, exercise plans,
// timed phase sequences and the screen navigator. Nothing here depends on
// the terminal, storage or any other infrastructure.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrUnknownMood         = errors.New("unknown mood")
	ErrUnknownNeed         = errors.New("unknown need")
	ErrUnknownScreen       = errors.New("unknown screen")
	ErrUnknownExercise     = errors.New("unknown exercise")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidPhaseSeconds = errors.New("phase duration must be positive")
	ErrRunNotFound         = errors.New("exercise run not found")
	ErrAlreadyRecorded     = errors.New("already recorded")
)

// UnknownMoodError reports a mood value outside the fixed taxonomy.
// Callers holding a typed Mood should never see it.
type UnknownMoodError struct {
	Mood Mood
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("unknown mood %q", string(e.Mood))
}

// Unwrap lets errors.Is match ErrUnknownMood.
func (e *UnknownMoodError) Unwrap() error {
	return ErrUnknownMood
}
