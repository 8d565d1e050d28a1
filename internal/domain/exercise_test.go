package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewExerciseSpec(t *testing.T) {
	spec, err := NewExerciseSpec(ExerciseBreathing, BreathingCycle, 60)
	if err != nil {
		t.Fatalf("NewExerciseSpec() error = %v", err)
	}
	if spec.Total != 60 || spec.Kind != ExerciseBreathing {
		t.Errorf("unexpected spec %+v", spec)
	}

	if _, err := NewExerciseSpec(ExerciseSOS, SOSCycle, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("zero length error = %v, want ErrInvalidDuration", err)
	}
	if _, err := NewExerciseSpec(ExerciseBreathing, BreathingCycle, MaxExerciseSeconds+1); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("over-long error = %v, want ErrInvalidDuration", err)
	}
	if _, err := NewExerciseSpec(ExerciseBreathing, BreathingCycle, 1<<62); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("huge length error = %v, want ErrInvalidDuration", err)
	}
	if _, err := NewExerciseSpec(ExerciseSOS, PhaseSequence{{"x", -1}}, 10); !errors.Is(err, ErrInvalidPhaseSeconds) {
		t.Errorf("bad phase error = %v, want ErrInvalidPhaseSeconds", err)
	}
}

func TestExerciseSpec_Preview(t *testing.T) {
	spec, _ := NewExerciseSpec(ExerciseBodyReset, nil, 5)
	ticks := spec.Preview()
	if len(ticks) != 5 {
		t.Fatalf("Preview() returned %d ticks, want 5", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Tick != i {
			t.Errorf("tick %d has Tick=%d", i, tk.Tick)
		}
		if tk.SecondsLeft != 5-i {
			t.Errorf("tick %d SecondsLeft = %d, want %d", i, tk.SecondsLeft, 5-i)
		}
	}
	if !ticks[4].Done || ticks[3].Done {
		t.Error("only the last tick should be marked done")
	}
}

func TestValidateExerciseKind(t *testing.T) {
	for _, k := range AllExercises {
		if _, err := ValidateExerciseKind(string(k)); err != nil {
			t.Errorf("ValidateExerciseKind(%q) error = %v", k, err)
		}
	}
	if _, err := ValidateExerciseKind("yoga"); !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("ValidateExerciseKind(yoga) error = %v", err)
	}
}

func TestExerciseKind_Screen(t *testing.T) {
	if ExerciseSOS.Screen() != ScreenSOS {
		t.Error("SOS exercise should live on the SOS screen")
	}
	if ExerciseBrainDump.Screen() != ScreenBrainDump {
		t.Error("brain dump exercise should live on the brain dump screen")
	}
}

func TestExerciseRun_Lifecycle(t *testing.T) {
	spec, _ := NewExerciseSpec(ExerciseSOS, SOSCycle, 30)
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	run := NewExerciseRun(spec, start)

	if run.Status != RunStatusRunning || run.Length != 30*time.Second {
		t.Fatalf("unexpected new run %+v", run)
	}

	run.Complete(start.Add(30 * time.Second))
	if run.Status != RunStatusCompleted || run.FinishedAt == nil {
		t.Errorf("Complete() left run %+v", run)
	}

	run.Cancel(start.Add(31 * time.Second))
	if run.Status != RunStatusCompleted {
		t.Error("Cancel() must not override a completed run")
	}
}

func TestRoutineCueAt(t *testing.T) {
	c, ok := RoutineCueAt(12)
	if !ok || c.Text != "Head tilts" {
		t.Errorf("RoutineCueAt(12) = %+v, %v", c, ok)
	}
	if _, ok := RoutineCueAt(75); ok {
		t.Error("RoutineCueAt(75) should have no cue")
	}
}

func TestExerciseSpec_Timeline(t *testing.T) {
	spec, _ := NewExerciseSpec(ExerciseBreathing, BreathingCycle, 30)
	want := []PhaseSegment{
		{"Inhale", 0, 4},
		{"Hold", 4, 4},
		{"Exhale", 8, 6},
		{"Inhale", 14, 4},
		{"Hold", 18, 4},
		{"Exhale", 22, 6},
		{"Inhale", 28, 2},
	}
	got := spec.Timeline()
	if len(got) != len(want) {
		t.Fatalf("Timeline() = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Timeline()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	plain, _ := NewExerciseSpec(ExerciseBrainDump, nil, 45)
	if tl := plain.Timeline(); len(tl) != 1 || tl[0].Seconds != 45 || tl[0].Phase != "" {
		t.Errorf("plain Timeline() = %+v", tl)
	}
}

func TestExerciseSpec_TimelineLongest(t *testing.T) {
	spec, err := NewExerciseSpec(ExerciseBreathing, BreathingCycle, MaxExerciseSeconds)
	if err != nil {
		t.Fatalf("NewExerciseSpec() error = %v", err)
	}

	tl := spec.Timeline()
	// 257 full 14s cycles plus a 2s inhale.
	if len(tl) != 257*3+1 {
		t.Fatalf("Timeline() has %d segments, want %d", len(tl), 257*3+1)
	}
	sum := 0
	for i, seg := range tl {
		if seg.Start != sum {
			t.Fatalf("segment %d starts at %d, want %d", i, seg.Start, sum)
		}
		sum += seg.Seconds
	}
	if sum != MaxExerciseSeconds {
		t.Errorf("segments cover %d seconds, want %d", sum, MaxExerciseSeconds)
	}
	if last := tl[len(tl)-1]; last != (PhaseSegment{"Inhale", 3598, 2}) {
		t.Errorf("last segment = %+v", last)
	}
}
