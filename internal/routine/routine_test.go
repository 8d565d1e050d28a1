package routine

import (
	"errors"
	"testing"
	"time"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
)

func TestForKind(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		kind      domain.ExerciseKind
		title     string
		fixed     bool
		defLength int
		phases    int
	}{
		{domain.ExerciseBreathing, "🫁 Breathing Exercise", false, 60, 3},
		{domain.ExerciseBrainDump, "🧠 Brain Dump", false, 60, 0},
		{domain.ExerciseBodyReset, "💪 Body Reset", false, 60, 0},
		{domain.ExerciseSOS, "🔥 SOS Calm Down", true, 30, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mode := ForKind(tt.kind, cfg)
			if mode.Kind() != tt.kind {
				t.Errorf("Kind() = %q", mode.Kind())
			}
			if mode.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", mode.Title(), tt.title)
			}
			if mode.FixedLength() != tt.fixed {
				t.Errorf("FixedLength() = %v", mode.FixedLength())
			}
			if mode.DefaultLength() != tt.defLength {
				t.Errorf("DefaultLength() = %d, want %d", mode.DefaultLength(), tt.defLength)
			}
			if len(mode.Sequence()) != tt.phases {
				t.Errorf("Sequence() has %d phases, want %d", len(mode.Sequence()), tt.phases)
			}
			if mode.CompletionMessage() != domain.CompletionMessage(tt.kind) {
				t.Errorf("CompletionMessage() = %q", mode.CompletionMessage())
			}
		})
	}
}

func TestSOSModeIsFixed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SessionLengths = []config.Duration{config.Duration(45 * time.Second)}

	mode := ForKind(domain.ExerciseSOS, cfg)
	if mode.DefaultLength() != domain.SOSSeconds {
		t.Errorf("DefaultLength() = %d, want %d", mode.DefaultLength(), domain.SOSSeconds)
	}
	if got := mode.Lengths(); len(got) != 1 || got[0] != domain.SOSSeconds {
		t.Errorf("Lengths() = %v", got)
	}
	if mode.Sequence().CycleLength() != 6 || mode.Sequence()[0].Name != "Inhale slowly" {
		t.Errorf("Sequence() = %+v", mode.Sequence())
	}
	if NextLength(mode, domain.SOSSeconds) != domain.SOSSeconds {
		t.Error("NextLength() should not change the SOS length")
	}
}

func TestForKindNilConfig(t *testing.T) {
	mode := ForKind(domain.ExerciseBreathing, nil)
	if len(mode.Lengths()) != 3 {
		t.Fatalf("expected 3 lengths with nil config, got %v", mode.Lengths())
	}
}

func TestCatalogSpec(t *testing.T) {
	cat := NewCatalog(config.DefaultConfig())

	t.Run("default length", func(t *testing.T) {
		spec, err := cat.Spec(domain.ExerciseBreathing, 0)
		if err != nil {
			t.Fatalf("Spec() error = %v", err)
		}
		if spec.Total != 60 || spec.Sequence.CycleLength() != 14 {
			t.Errorf("Spec() = %+v", spec)
		}
	})

	t.Run("explicit length", func(t *testing.T) {
		spec, err := cat.Spec(domain.ExerciseBrainDump, 90)
		if err != nil {
			t.Fatalf("Spec() error = %v", err)
		}
		if spec.Total != 90 {
			t.Errorf("Total = %d, want 90", spec.Total)
		}
	})

	t.Run("sos ignores requested length", func(t *testing.T) {
		spec, err := cat.Spec(domain.ExerciseSOS, 90)
		if err != nil {
			t.Fatalf("Spec() error = %v", err)
		}
		if spec.Total != 30 {
			t.Errorf("Total = %d, want 30", spec.Total)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := cat.Spec(domain.ExerciseBodyReset, -5)
		if !errors.Is(err, domain.ErrInvalidDuration) {
			t.Errorf("Spec() error = %v, want ErrInvalidDuration", err)
		}
	})

	t.Run("length above the ceiling", func(t *testing.T) {
		for _, total := range []int{domain.MaxExerciseSeconds + 1, 1 << 62} {
			_, err := cat.Spec(domain.ExerciseBreathing, total)
			if !errors.Is(err, domain.ErrInvalidDuration) {
				t.Errorf("Spec(%d) error = %v, want ErrInvalidDuration", total, err)
			}
		}
	})

	t.Run("longest length", func(t *testing.T) {
		spec, err := cat.Spec(domain.ExerciseBodyReset, domain.MaxExerciseSeconds)
		if err != nil {
			t.Fatalf("Spec() error = %v", err)
		}
		if spec.Total != domain.MaxExerciseSeconds {
			t.Errorf("Total = %d", spec.Total)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := cat.Spec(domain.ExerciseKind("yoga"), 30)
		if !errors.Is(err, domain.ErrUnknownExercise) {
			t.Errorf("Spec() error = %v, want ErrUnknownExercise", err)
		}
	})
}

func TestHeadlinesAndCaptions(t *testing.T) {
	cfg := config.DefaultConfig()

	breathing := ForKind(domain.ExerciseBreathing, cfg)
	tick := domain.BreathingCycle.At(5, 60)
	if got := breathing.Headline(tick); got != "Hold…" {
		t.Errorf("breathing Headline() = %q", got)
	}
	if got := breathing.Caption(tick); got != domain.BreathingPhrases[0] {
		t.Errorf("breathing Caption() = %q", got)
	}

	dump := ForKind(domain.ExerciseBrainDump, cfg)
	if got := dump.Headline(domain.PhaseSequence(nil).At(0, 60)); got != "60 seconds remaining" {
		t.Errorf("brain dump Headline() = %q", got)
	}

	body := ForKind(domain.ExerciseBodyReset, cfg)
	bodyTick := domain.PhaseSequence(nil).At(12, 60)
	if got := body.Headline(bodyTick); got != "13/60 seconds" {
		t.Errorf("body Headline() = %q", got)
	}
	if got := body.Caption(bodyTick); got != "Head tilts" {
		t.Errorf("body Caption() = %q", got)
	}

	sos := ForKind(domain.ExerciseSOS, cfg)
	if got := sos.Headline(domain.SOSCycle.At(4, 30)); got != "Exhale gently…" {
		t.Errorf("sos Headline() = %q", got)
	}
}

func TestNextLength(t *testing.T) {
	cfg := config.DefaultConfig()
	breathing := ForKind(domain.ExerciseBreathing, cfg)
	if got := NextLength(breathing, 30); got != 60 {
		t.Errorf("NextLength(30) = %d, want 60", got)
	}
	if got := NextLength(breathing, 90); got != 30 {
		t.Errorf("NextLength(90) = %d, want 30", got)
	}
	if got := NextLength(breathing, 45); got != 30 {
		t.Errorf("NextLength(unknown) = %d, want first length", got)
	}
	if got := NextLength(ForKind(domain.ExerciseSOS, cfg), 30); got != 30 {
		t.Errorf("NextLength(sos) = %d, want 30", got)
	}
}
