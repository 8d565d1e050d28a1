// Package routine encapsulates the behavior of each timed exercise.
// The TUI, the CLI runners and the services query the Mode interface for
// pacing, lengths and captions instead of switching on the exercise kind.
package routine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
)

// Mode defines the interface for exercise-specific behavior.
type Mode interface {
	// Kind returns the exercise identifier.
	Kind() domain.ExerciseKind

	// Title is the heading of the exercise screen.
	Title() string

	// Intro is shown before the exercise starts.
	Intro() string

	// Sequence is the cyclic phase pacing; empty for plain countdowns.
	Sequence() domain.PhaseSequence

	// Lengths returns the selectable lengths in seconds.
	Lengths() []int

	// DefaultLength is the length used when none is chosen.
	DefaultLength() int

	// FixedLength reports whether the length cannot be changed.
	FixedLength() bool

	// Headline is the large text shown for a tick.
	Headline(tick domain.PhaseTick) string

	// Caption is the smaller line under the headline.
	Caption(tick domain.PhaseTick) string

	// CompletionMessage is shown when the exercise finishes.
	CompletionMessage() string
}

// ForKind returns the Mode implementation for kind. A nil config uses defaults.
func ForKind(kind domain.ExerciseKind, cfg *config.Config) Mode {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	switch kind {
	case domain.ExerciseBrainDump:
		return &brainDumpMode{lengths: cfg.Lengths(), def: cfg.BrainDump.DefaultLength.Seconds()}
	case domain.ExerciseBodyReset:
		return &bodyResetMode{lengths: cfg.Lengths(), def: cfg.BodyReset.DefaultLength.Seconds()}
	case domain.ExerciseSOS:
		return &sosMode{}
	default:
		return &breathingMode{seq: cfg.Breathing.Sequence(), lengths: cfg.Lengths(), def: cfg.Breathing.DefaultLength.Seconds()}
	}
}

// Catalog builds exercise specs from the configured modes.
type Catalog struct {
	cfg *config.Config
}

// NewCatalog creates a catalog over cfg.
func NewCatalog(cfg *config.Config) *Catalog {
	return &Catalog{cfg: cfg}
}

// Mode returns the mode for kind.
func (c *Catalog) Mode(kind domain.ExerciseKind) Mode {
	return ForKind(kind, c.cfg)
}

// Spec returns the spec for running kind for total seconds.
// A zero total selects the default length; fixed-length exercises ignore total.
func (c *Catalog) Spec(kind domain.ExerciseKind, total int) (domain.ExerciseSpec, error) {
	if _, err := domain.ValidateExerciseKind(string(kind)); err != nil {
		return domain.ExerciseSpec{}, err
	}
	mode := c.Mode(kind)
	switch {
	case mode.FixedLength() || total == 0:
		total = mode.DefaultLength()
	case total < 0:
		return domain.ExerciseSpec{}, fmt.Errorf("%w: %d seconds", domain.ErrInvalidDuration, total)
	}
	return domain.NewExerciseSpec(kind, mode.Sequence(), total)
}

// NextLength cycles through mode's lengths starting after current.
func NextLength(mode Mode, current int) int {
	lengths := mode.Lengths()
	if mode.FixedLength() || len(lengths) == 0 {
		return mode.DefaultLength()
	}
	i := slices.Index(lengths, current)
	return lengths[(i+1)%len(lengths)]
}

// --- Breathing ---

type breathingMode struct {
	seq     domain.PhaseSequence
	lengths []int
	def     int
}

func (m *breathingMode) Kind() domain.ExerciseKind          { return domain.ExerciseBreathing }
func (m *breathingMode) Title() string                      { return "🫁 Breathing Exercise" }
func (m *breathingMode) Sequence() domain.PhaseSequence     { return m.seq }
func (m *breathingMode) Lengths() []int                     { return m.lengths }
func (m *breathingMode) DefaultLength() int                 { return m.def }
func (m *breathingMode) FixedLength() bool                  { return false }
func (m *breathingMode) CompletionMessage() string          { return domain.CompletionMessage(m.Kind()) }
func (m *breathingMode) Headline(t domain.PhaseTick) string { return t.Phase + "…" }

func (m *breathingMode) Intro() string {
	parts := make([]string, len(m.seq))
	for i, p := range m.seq {
		parts[i] = fmt.Sprintf("%s %ds", p.Name, p.Seconds)
	}
	return "Follow the rhythm: " + strings.Join(parts, " · ")
}

func (m *breathingMode) Caption(t domain.PhaseTick) string {
	return domain.BreathingPhrases[t.Tick%len(domain.BreathingPhrases)]
}

// --- Brain Dump ---

type brainDumpMode struct {
	lengths []int
	def     int
}

func (m *brainDumpMode) Kind() domain.ExerciseKind       { return domain.ExerciseBrainDump }
func (m *brainDumpMode) Title() string                   { return "🧠 Brain Dump" }
func (m *brainDumpMode) Intro() string                   { return "Write whatever is on your mind. No rules, no judgment." }
func (m *brainDumpMode) Sequence() domain.PhaseSequence  { return nil }
func (m *brainDumpMode) Lengths() []int                  { return m.lengths }
func (m *brainDumpMode) DefaultLength() int              { return m.def }
func (m *brainDumpMode) FixedLength() bool               { return false }
func (m *brainDumpMode) Caption(domain.PhaseTick) string { return "Keep writing…" }
func (m *brainDumpMode) CompletionMessage() string       { return domain.CompletionMessage(m.Kind()) }

func (m *brainDumpMode) Headline(t domain.PhaseTick) string {
	return fmt.Sprintf("%d seconds remaining", t.SecondsLeft)
}

// --- Body Reset ---

type bodyResetMode struct {
	lengths []int
	def     int
}

func (m *bodyResetMode) Kind() domain.ExerciseKind      { return domain.ExerciseBodyReset }
func (m *bodyResetMode) Title() string                  { return "💪 Body Reset" }
func (m *bodyResetMode) Intro() string                  { return "Release tension with a gentle stretch routine." }
func (m *bodyResetMode) Sequence() domain.PhaseSequence { return nil }
func (m *bodyResetMode) Lengths() []int                 { return m.lengths }
func (m *bodyResetMode) DefaultLength() int             { return m.def }
func (m *bodyResetMode) FixedLength() bool              { return false }
func (m *bodyResetMode) CompletionMessage() string      { return domain.CompletionMessage(m.Kind()) }

func (m *bodyResetMode) Headline(t domain.PhaseTick) string {
	return fmt.Sprintf("%d/%d seconds", t.Tick+1, t.Total)
}

func (m *bodyResetMode) Caption(t domain.PhaseTick) string {
	if cue, ok := domain.RoutineCueAt(t.Tick); ok {
		return cue.Text
	}
	return "Move gently"
}

// --- SOS ---

// sosMode always runs the 3-3 cycle for SOSSeconds; it is not configurable.
type sosMode struct{}

func (m *sosMode) Kind() domain.ExerciseKind          { return domain.ExerciseSOS }
func (m *sosMode) Title() string                      { return "🔥 SOS Calm Down" }
func (m *sosMode) Intro() string                      { return "You're safe. Let's slow things down together." }
func (m *sosMode) Sequence() domain.PhaseSequence     { return domain.SOSCycle }
func (m *sosMode) Lengths() []int                     { return []int{domain.SOSSeconds} }
func (m *sosMode) DefaultLength() int                 { return domain.SOSSeconds }
func (m *sosMode) FixedLength() bool                  { return true }
func (m *sosMode) Headline(t domain.PhaseTick) string { return t.Phase + "…" }
func (m *sosMode) CompletionMessage() string          { return domain.CompletionMessage(m.Kind()) }

func (m *sosMode) Caption(t domain.PhaseTick) string {
	return fmt.Sprintf("%d/%d seconds", t.Tick+1, t.Total)
}
