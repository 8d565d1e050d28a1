package ports

import "github.com/xvierd/mindminute/internal/domain"

// ExerciseCatalog resolves an exercise kind and requested length to a
// runnable spec. A zero total selects the exercise's default length.
type ExerciseCatalog interface {
	Spec(kind domain.ExerciseKind, total int) (domain.ExerciseSpec, error)
}
