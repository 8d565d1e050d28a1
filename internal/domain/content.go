package domain

// BreathingPhrases rotate once per second during a breathing session.
var BreathingPhrases = []string{
	"You're doing amazing 💛",
	"Inhale calm, exhale tension…",
	"Let your shoulders soften 🌿",
	"You’re safe right now",
	"This moment is for you ✨",
}

// RoutineCue is a stretch suggested between two offsets of a body reset.
type RoutineCue struct {
	From int
	To   int
	Text string
}

// BodyResetRoutine is the recommended one-minute stretch routine.
var BodyResetRoutine = []RoutineCue{
	{From: 0, To: 10, Text: "Shoulder rolls"},
	{From: 10, To: 20, Text: "Head tilts"},
	{From: 20, To: 30, Text: "Arm stretch overhead"},
	{From: 30, To: 45, Text: "Open chest stretch"},
	{From: 45, To: 60, Text: "Neck circles"},
}

// RoutineCueAt returns the cue covering second sec, if any.
func RoutineCueAt(sec int) (RoutineCue, bool) {
	for _, c := range BodyResetRoutine {
		if sec >= c.From && sec < c.To {
			return c, true
		}
	}
	return RoutineCue{}, false
}

// GroundingStep is one sense of the 5-4-3-2-1 exercise.
type GroundingStep struct {
	Title       string
	Description string
}

// GroundingSteps is the 5-4-3-2-1 checklist.
var GroundingSteps = []GroundingStep{
	{"5 things you can see", "Look around and notice five things you can see in your environment."},
	{"4 things you can feel", "Notice four things you can physically feel (your chair, your clothes, the floor, etc.)."},
	{"3 things you can hear", "Listen for three different sounds, near or far."},
	{"2 things you can smell", "Notice two scents around you. If you can't smell anything, think of two smells you enjoy."},
	{"1 thing you can taste", "Focus on one thing you can taste right now, or recall a taste you love."},
}

// SOSNextStep closes the panic-support page.
const SOSNextStep = "Text a friend, drink some water, or take a short walk. You do not have to solve everything right now."

// CompletionMessage is shown once an exercise finishes.
func CompletionMessage(kind ExerciseKind) string {
	switch kind {
	case ExerciseBreathing:
		return "Session complete 💜"
	case ExerciseBrainDump:
		return "Nice job letting it out 💜"
	case ExerciseBodyReset:
		return "Body reset complete 🌸"
	case ExerciseSOS:
		return "Nice job. Your body got a tiny reset. 💜"
	default:
		return "Done 💜"
	}
}
