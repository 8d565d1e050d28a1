package ports

import "github.com/xvierd/mindminute/internal/domain"

// Notifier tells the user an exercise has finished.
// This is a driven port (implemented by adapters).
type Notifier interface {
	NotifyExerciseComplete(kind domain.ExerciseKind) error
}
