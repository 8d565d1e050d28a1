package domain

import "fmt"

// Phase is a named sub-interval of a cyclic exercise.
type Phase struct {
	Name    string
	Seconds int
}

// PhaseSequence is one cycle of phases. It repeats for as long as the
// exercise runs; the exercise length need not be a multiple of the cycle.
// An empty sequence means the exercise has no phase cues.
type PhaseSequence []Phase

// Common sequences.
var (
	// BreathingCycle is the 4-4-6 pacing used by the breathing screen.
	BreathingCycle = PhaseSequence{
		{Name: "Inhale", Seconds: 4},
		{Name: "Hold", Seconds: 4},
		{Name: "Exhale", Seconds: 6},
	}

	// SOSCycle is the 3-3 pacing of the panic-support breathing reset.
	SOSCycle = PhaseSequence{
		{Name: "Inhale slowly", Seconds: 3},
		{Name: "Exhale gently", Seconds: 3},
	}
)

// NewPhaseSequence validates phases and returns them as a sequence.
func NewPhaseSequence(phases ...Phase) (PhaseSequence, error) {
	seq := PhaseSequence(phases)
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

// Validate checks that every phase has a positive duration.
func (s PhaseSequence) Validate() error {
	for _, p := range s {
		if p.Seconds <= 0 {
			return fmt.Errorf("%w: %q has %ds", ErrInvalidPhaseSeconds, p.Name, p.Seconds)
		}
	}
	return nil
}

// CycleLength is the sum of all phase durations.
func (s PhaseSequence) CycleLength() int {
	total := 0
	for _, p := range s {
		total += p.Seconds
	}
	return total
}

// PhaseTick is what a phase timer reports for one elapsed second.
type PhaseTick struct {
	// Tick is the zero-based second within the exercise.
	Tick  int
	Total int
	// Phase is empty for sequences without cues.
	Phase      string
	PhaseIndex int
	// SecondsLeft is the time remaining in the phase, or in the whole
	// exercise when there are no phases.
	SecondsLeft int
	Fraction    float64
	Done        bool
}

// At maps second sec of a total-second exercise onto the cycle.
// At sec = 0 the first phase reports its full duration as remaining.
func (s PhaseSequence) At(sec, total int) PhaseTick {
	tick := PhaseTick{
		Tick:        sec,
		Total:       total,
		PhaseIndex:  -1,
		SecondsLeft: total - sec,
	}
	if total > 0 {
		tick.Fraction = float64(sec+1) / float64(total)
		tick.Done = sec+1 >= total
	}

	cycle := s.CycleLength()
	if cycle == 0 {
		return tick
	}

	pos := sec % cycle
	elapsed := 0
	for i, p := range s {
		if pos < elapsed+p.Seconds {
			tick.Phase = p.Name
			tick.PhaseIndex = i
			tick.SecondsLeft = (elapsed + p.Seconds) - pos
			break
		}
		elapsed += p.Seconds
	}
	return tick
}
