package services

import (
	"context"
	"time"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// PhaseTimer drives an exercise one tick per interval.
type PhaseTimer struct {
	clock    ports.Clock
	interval time.Duration
}

// NewPhaseTimer creates a timer ticking once per second on clock.
func NewPhaseTimer(clock ports.Clock) *PhaseTimer {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &PhaseTimer{clock: clock, interval: time.Second}
}

// SetInterval changes the time between ticks.
func (t *PhaseTimer) SetInterval(d time.Duration) {
	if d > 0 {
		t.interval = d
	}
}

// Run emits spec.Total ticks, one per interval, calling onTick for each.
// Every tick is held for a full interval, the final one (with Done set)
// included, so a run of N ticks lasts N intervals before Run returns nil.
// When ctx is cancelled Run stops scheduling and returns ctx.Err().
func (t *PhaseTimer) Run(ctx context.Context, spec domain.ExerciseSpec, onTick func(domain.PhaseTick)) error {
	if spec.Total <= 0 {
		return domain.ErrInvalidDuration
	}

	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for sec := 0; sec < spec.Total; sec++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if onTick != nil {
			onTick(spec.At(sec))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
		}
	}
	return nil
}

// TickStream is a running exercise delivered over a channel.
type TickStream struct {
	ticks  chan domain.PhaseTick
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Ticks is closed once the exercise completes or is cancelled.
func (s *TickStream) Ticks() <-chan domain.PhaseTick {
	return s.ticks
}

// Cancel stops the exercise. It is safe to call more than once.
func (s *TickStream) Cancel() {
	s.cancel()
}

// Wait blocks until the exercise ends and returns nil on completion or
// the context error on cancellation.
func (s *TickStream) Wait() error {
	<-s.done
	return s.err
}

// Stream runs spec in the background.
func (t *PhaseTimer) Stream(ctx context.Context, spec domain.ExerciseSpec) *TickStream {
	return t.stream(ctx, spec, nil, nil)
}

// stream calls onTick before each tick is delivered and finish before the
// channel is closed, so consumers observe the journal already updated.
func (t *PhaseTimer) stream(ctx context.Context, spec domain.ExerciseSpec, onTick func(domain.PhaseTick), finish func(error)) *TickStream {
	ctx, cancel := context.WithCancel(ctx)
	s := &TickStream{
		ticks:  make(chan domain.PhaseTick),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.ticks)
		defer cancel()

		s.err = t.Run(ctx, spec, func(tick domain.PhaseTick) {
			if onTick != nil {
				onTick(tick)
			}
			select {
			case s.ticks <- tick:
			case <-ctx.Done():
			}
		})
		if finish != nil {
			finish(s.err)
		}
	}()

	return s
}
