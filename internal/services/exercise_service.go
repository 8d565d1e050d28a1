package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/observability"
	"github.com/xvierd/mindminute/internal/ports"
)

// ExerciseService handles timed exercise use cases.
type ExerciseService struct {
	storage  ports.Storage
	catalog  ports.ExerciseCatalog
	timer    *PhaseTimer
	clock    ports.Clock
	notifier ports.Notifier
}

// NewExerciseService creates a new exercise service. storage may be nil.
func NewExerciseService(storage ports.Storage, catalog ports.ExerciseCatalog, clock ports.Clock) *ExerciseService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &ExerciseService{
		storage: storage,
		catalog: catalog,
		timer:   NewPhaseTimer(clock),
		clock:   clock,
	}
}

// SetNotifier sets the notifier used when an exercise completes.
func (s *ExerciseService) SetNotifier(n ports.Notifier) {
	s.notifier = n
}

// Timer returns the phase timer driving exercises.
func (s *ExerciseService) Timer() *PhaseTimer {
	return s.timer
}

// Preview resolves kind and total to a spec without starting anything.
func (s *ExerciseService) Preview(kind domain.ExerciseKind, total int) (domain.ExerciseSpec, error) {
	spec, err := s.catalog.Spec(kind, total)
	if err != nil {
		return domain.ExerciseSpec{}, fmt.Errorf("failed to resolve %s: %w", kind, err)
	}
	return spec, nil
}

// Begin journals a new run of kind. Callers that drive ticks themselves
// pair it with Finish.
func (s *ExerciseService) Begin(ctx context.Context, kind domain.ExerciseKind, total int) (*domain.ExerciseRun, domain.ExerciseSpec, error) {
	spec, err := s.Preview(kind, total)
	if err != nil {
		return nil, domain.ExerciseSpec{}, err
	}

	run := domain.NewExerciseRun(spec, s.clock.Now())
	if s.storage != nil {
		if err := s.storage.Exercises().Save(ctx, run); err != nil {
			observability.Logger().Warn("journal exercise run failed", "id", run.ID, "error", err)
		}
	}

	observability.WithFields("run_id", run.ID).Debug("exercise started",
		"kind", string(kind),
		"seconds", spec.Total,
	)
	return run, spec, nil
}

// Finish closes run as completed or cancelled after ticks served ticks.
func (s *ExerciseService) Finish(ctx context.Context, run *domain.ExerciseRun, completed bool, ticks int) {
	if run == nil || run.Status != domain.RunStatusRunning {
		return
	}

	now := s.clock.Now()
	run.TicksServed = ticks
	if completed {
		run.Complete(now)
	} else {
		run.Cancel(now)
	}

	if s.storage != nil {
		// The caller's context may already be cancelled; the journal update still has to land.
		if err := s.storage.Exercises().Update(context.WithoutCancel(ctx), run); err != nil {
			observability.Logger().Warn("journal exercise run failed", "id", run.ID, "error", err)
		}
	}

	logger := observability.WithFields("run_id", run.ID)
	if !completed {
		logger.Info("exercise cancelled", "kind", string(run.Kind), "ticks", ticks)
		return
	}
	logger.Info("exercise completed", "kind", string(run.Kind))

	if s.notifier != nil {
		if err := s.notifier.NotifyExerciseComplete(run.Kind); err != nil {
			logger.Warn("notification failed", "error", err)
		}
	}
}

// Start runs kind in the background. Cancelling ctx or the stream stops it.
func (s *ExerciseService) Start(ctx context.Context, kind domain.ExerciseKind, total int) (*TickStream, error) {
	run, spec, err := s.Begin(ctx, kind, total)
	if err != nil {
		return nil, err
	}

	ticks := 0
	ctx = observability.WithRunID(ctx, run.ID)
	stream := s.timer.stream(ctx, spec,
		func(domain.PhaseTick) { ticks++ },
		func(err error) {
			completed := err == nil
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				observability.LoggerFromContext(ctx).Error("exercise failed", "error", err)
			}
			s.Finish(ctx, run, completed, ticks)
		},
	)
	return stream, nil
}

// stats counts finished runs in the journal.
func (s *ExerciseService) stats(ctx context.Context) (completed, cancelled int, err error) {
	if s.storage == nil {
		return 0, 0, nil
	}
	completed, err = s.storage.Exercises().CountByStatus(ctx, domain.RunStatusCompleted)
	if err != nil {
		return 0, 0, err
	}
	cancelled, err = s.storage.Exercises().CountByStatus(ctx, domain.RunStatusCancelled)
	if err != nil {
		return 0, 0, err
	}
	return completed, cancelled, nil
}
