package domain

import (
	"fmt"
	"time"
)

// ExerciseKind identifies a timed exercise.
type ExerciseKind string

const (
	ExerciseBreathing ExerciseKind = "breathing"
	ExerciseBrainDump ExerciseKind = "brain_dump"
	ExerciseBodyReset ExerciseKind = "body_reset"
	ExerciseSOS       ExerciseKind = "sos"
)

// AllExercises lists the timed exercises.
var AllExercises = []ExerciseKind{
	ExerciseBreathing,
	ExerciseBrainDump,
	ExerciseBodyReset,
	ExerciseSOS,
}

// ValidateExerciseKind checks if a string names a timed exercise.
func ValidateExerciseKind(s string) (ExerciseKind, error) {
	k := ExerciseKind(s)
	for _, valid := range AllExercises {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of breathing, brain_dump, body_reset, sos", ErrUnknownExercise, s)
}

// Screen returns the screen hosting the exercise.
func (k ExerciseKind) Screen() Screen {
	switch k {
	case ExerciseBreathing:
		return ScreenBreathing
	case ExerciseBrainDump:
		return ScreenBrainDump
	case ExerciseBodyReset:
		return ScreenBodyReset
	case ExerciseSOS:
		return ScreenSOS
	default:
		return ScreenHome
	}
}

// Label returns a human-readable label.
func (k ExerciseKind) Label() string {
	switch k {
	case ExerciseBreathing:
		return "Breathing"
	case ExerciseBrainDump:
		return "Brain Dump"
	case ExerciseBodyReset:
		return "Body Reset"
	case ExerciseSOS:
		return "SOS Breathing"
	default:
		return "Unknown"
	}
}

// MaxExerciseSeconds caps the length of a single exercise at one hour.
const MaxExerciseSeconds = 3600

// SOSSeconds is the fixed length of the panic-support breathing reset.
const SOSSeconds = 30

// ExerciseSpec is everything a phase timer needs to run an exercise.
type ExerciseSpec struct {
	Kind     ExerciseKind
	Sequence PhaseSequence
	Total    int
}

// NewExerciseSpec validates the sequence and length.
func NewExerciseSpec(kind ExerciseKind, seq PhaseSequence, total int) (ExerciseSpec, error) {
	if total <= 0 {
		return ExerciseSpec{}, fmt.Errorf("%w: exercise length must be positive, got %d", ErrInvalidDuration, total)
	}
	if total > MaxExerciseSeconds {
		return ExerciseSpec{}, fmt.Errorf("%w: exercise length must be at most %d seconds, got %d", ErrInvalidDuration, MaxExerciseSeconds, total)
	}
	if err := seq.Validate(); err != nil {
		return ExerciseSpec{}, err
	}
	return ExerciseSpec{Kind: kind, Sequence: seq, Total: total}, nil
}

// At returns the tick for second sec of the exercise.
func (s ExerciseSpec) At(sec int) PhaseTick {
	return s.Sequence.At(sec, s.Total)
}

// Preview returns every tick of the exercise without waiting.
func (s ExerciseSpec) Preview() []PhaseTick {
	ticks := make([]PhaseTick, s.Total)
	for sec := range ticks {
		ticks[sec] = s.At(sec)
	}
	return ticks
}

// RunStatus is the outcome of an exercise run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusCancelled RunStatus = "cancelled"
)

// ExerciseRun records one attempt at an exercise during the session.
type ExerciseRun struct {
	ID          string
	Kind        ExerciseKind
	Length      time.Duration
	Status      RunStatus
	StartedAt   time.Time
	FinishedAt  *time.Time
	TicksServed int
}

// NewExerciseRun starts a run record for spec.
func NewExerciseRun(spec ExerciseSpec, at time.Time) *ExerciseRun {
	return &ExerciseRun{
		ID:        generateID(),
		Kind:      spec.Kind,
		Length:    time.Duration(spec.Total) * time.Second,
		Status:    RunStatusRunning,
		StartedAt: at,
	}
}

// Complete marks the run as finished.
func (r *ExerciseRun) Complete(at time.Time) {
	r.FinishedAt = &at
	r.Status = RunStatusCompleted
}

// Cancel marks the run as interrupted.
func (r *ExerciseRun) Cancel(at time.Time) {
	if r.Status != RunStatusRunning {
		return
	}
	r.FinishedAt = &at
	r.Status = RunStatusCancelled
}

// PhaseSegment is one uninterrupted stretch of a phase within an exercise.
type PhaseSegment struct {
	Phase   string `json:"phase"`
	Start   int    `json:"start"`
	Seconds int    `json:"seconds"`
}

// Timeline walks the cycle and returns one segment per phase occurrence.
// The last segment is cut short when the exercise length is not a multiple
// of the cycle. Exercises without phases form a single segment.
func (s ExerciseSpec) Timeline() []PhaseSegment {
	if s.Total <= 0 {
		return nil
	}
	if s.Sequence.CycleLength() <= 0 {
		return []PhaseSegment{{Start: 0, Seconds: s.Total}}
	}

	var out []PhaseSegment
	for start, i := 0, 0; start < s.Total; i = (i + 1) % len(s.Sequence) {
		p := s.Sequence[i]
		if p.Seconds <= 0 {
			continue
		}
		n := min(p.Seconds, s.Total-start)
		out = append(out, PhaseSegment{Phase: p.Name, Start: start, Seconds: n})
		start += n
	}
	return out
}
