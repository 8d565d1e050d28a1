package domain

// PlanStep is one recommended exercise with a one-click target.
// Seconds is the suggested session length; 0 means the screen default.
type PlanStep struct {
	Label   string
	Button  string
	Target  Screen
	Seconds int
}

// Plan is an ordered list of steps produced for one (mood, need) request.
type Plan struct {
	Mood  Mood
	Need  Need
	Steps []PlanStep
}

// IsEmpty reports whether no rule produced any step.
func (p Plan) IsEmpty() bool {
	return len(p.Steps) == 0
}

// Keywords matched against the need, case-insensitively.
const (
	keywordCalm     = "calm"
	keywordThoughts = "thoughts"
	keywordBody     = "body"
)

func step(label string, target Screen, seconds int) PlanStep {
	return PlanStep{
		Label:   label,
		Button:  "Go to " + target.Label(),
		Target:  target,
		Seconds: seconds,
	}
}

// Recommend selects the plan for a mood and a stated need. The first
// matching rule wins. Stressed and Overwhelmed depend on the need; the
// other moods ignore it. A stressed or overwhelmed user whose need names
// none of the keywords gets an empty plan.
func Recommend(mood Mood, need Need) Plan {
	plan := Plan{Mood: mood, Need: need}

	switch mood {
	case MoodStressed, MoodOverwhelmed:
		switch {
		case need.Mentions(keywordCalm):
			plan.Steps = []PlanStep{
				step("🫁 60 sec Breathing", ScreenBreathing, 60),
				step("🧠 60 sec Brain Dump", ScreenBrainDump, 60),
				step("💪 30 sec Body Reset", ScreenBodyReset, 30),
			}
		case need.Mentions(keywordThoughts):
			plan.Steps = []PlanStep{
				step("🧠 Brain Dump – 60–90 sec", ScreenBrainDump, 60),
				step("🫁 Breathing – 30 sec", ScreenBreathing, 30),
			}
		case need.Mentions(keywordBody):
			plan.Steps = []PlanStep{
				step("💪 Body Reset – 60 sec", ScreenBodyReset, 60),
				step("🫁 Breathing – 30 sec", ScreenBreathing, 30),
			}
		}
	case MoodTired:
		plan.Steps = []PlanStep{
			step("💪 Body Reset – 60 sec", ScreenBodyReset, 60),
			step("🫁 Breathing – 30 sec", ScreenBreathing, 30),
		}
	case MoodGood:
		plan.Steps = []PlanStep{
			step("🧠 Brain Dump", ScreenBrainDump, 0),
			step("🫁 Short Breathing", ScreenBreathing, 30),
		}
	default:
		plan.Steps = []PlanStep{
			step("🫁 Breathing – 30–60 sec", ScreenBreathing, 30),
			step("🧠 Optional Brain Dump", ScreenBrainDump, 0),
		}
	}

	return plan
}
