package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/mindminute/internal/domain"
)

type styles struct {
	title   lipgloss.Style
	accent  lipgloss.Style
	help    lipgloss.Style
	box     lipgloss.Style
	sos     lipgloss.Style
	success lipgloss.Style
}

func (m Model) styles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)),
		accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorAccent)),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp)),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(m.theme.ColorBox)).Padding(0, 2),
		sos:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorSOS)),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorSuccess)),
	}
}

// View renders the TUI.
func (m Model) View() string {
	var content string
	switch m.screen {
	case domain.ScreenBrainDump:
		content = m.viewBrainDump()
	case domain.ScreenGrounding:
		content = m.viewGrounding()
	case domain.ScreenSOS:
		content = m.viewSOS()
	case domain.ScreenBreathing, domain.ScreenBodyReset:
		content = m.viewExercise()
	default:
		content = m.viewHome()
	}

	if m.status != "" {
		content += "\n" + m.styles().sos.Render(m.status)
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewHome() string {
	st := m.styles()
	var b strings.Builder

	headline, subline := domain.Greeting(m.name, m.app.Now())
	b.WriteString(st.title.Render(m.theme.IconApp+" MindMinute") + "\n\n")
	b.WriteString(st.accent.Render(headline) + "\n")
	if subline != "" {
		b.WriteString(subline + "\n")
	}
	if m.editingName {
		b.WriteString("Name: " + m.nameInput.View() + "\n")
	}

	b.WriteString("\n" + st.title.Render("How are you feeling?") + "\n")
	moods := make([]string, len(domain.AllMoods))
	for i, mood := range domain.AllMoods {
		if i == m.moodCursor {
			moods[i] = st.accent.Render("[" + string(mood) + "]")
		} else {
			moods[i] = " " + string(mood) + " "
		}
	}
	b.WriteString(strings.Join(moods, " ") + "\n")

	if m.checkin != nil {
		b.WriteString(st.box.Render(m.theme.IconAffirmation+" "+m.checkin.Affirmation) + "\n")
		b.WriteString(fmt.Sprintf("%s Streak: %s\n", m.theme.IconStreak, domain.StreakLabel(m.checkin.Streak)))
	}

	b.WriteString("\n" + st.title.Render("What do you need right now?") + "\n")
	for i, need := range domain.AllNeeds {
		if i == m.needCursor {
			b.WriteString(st.accent.Render("▸ "+string(need)) + "\n")
		} else {
			b.WriteString("  " + string(need) + "\n")
		}
	}

	if m.plan != nil {
		b.WriteString("\n" + st.title.Render(m.theme.IconPlan+" Your mini plan") + "\n")
		if m.plan.IsEmpty() {
			b.WriteString(st.help.Render("No plan for that combination yet. Try another need.") + "\n")
		}
		for i, s := range m.plan.Steps {
			b.WriteString(fmt.Sprintf("[%d] %s  %s\n", i+1, s.Label, st.help.Render("→ "+s.Button)))
		}
	}

	if scores := m.app.MoodHistoryScores(); len(scores) > 0 {
		b.WriteString(fmt.Sprintf("\nMood history %s  (%d check-ins)\n", st.accent.Render(sparkline(scores)), len(scores)))
	}

	b.WriteString("\n" + st.help.Render("←/→ mood · enter check in · ↑/↓ need · p plan · n name") + "\n")
	b.WriteString(st.help.Render("[b]reathe [d]ump [r]eset [g]round [s]os · q quit"))
	return b.String()
}

// viewTimer renders the running, finished or idle state of the hosted exercise.
func (m Model) viewTimer(color lipgloss.Color) string {
	st := m.styles()
	ex := m.ex
	var b strings.Builder

	switch {
	case ex.running:
		b.WriteString(st.accent.Render(ex.mode.Headline(ex.tick)) + "\n\n")
		if ex.tick.Phase != "" {
			b.WriteString(renderBigDigits(strconv.Itoa(ex.tick.SecondsLeft), color, m.width) + "\n\n")
		}
		b.WriteString(ex.progress.ViewAs(ex.tick.Fraction) + "\n")
		b.WriteString(st.help.Render(ex.mode.Caption(ex.tick)) + "\n")
	case ex.done:
		b.WriteString(st.success.Render(ex.mode.CompletionMessage()) + "\n")
	default:
		b.WriteString(renderBigDigits(formatClock(ex.length), color, m.width) + "\n")
	}
	return b.String()
}

func (m Model) lengthLine() string {
	st := m.styles()
	if m.ex.mode.FixedLength() {
		return st.help.Render(fmt.Sprintf("%d seconds", m.ex.length))
	}
	parts := make([]string, 0, len(m.ex.mode.Lengths()))
	for _, l := range m.ex.mode.Lengths() {
		label := fmt.Sprintf("%ds", l)
		if l == m.ex.length {
			parts = append(parts, st.accent.Render("["+label+"]"))
		} else {
			parts = append(parts, " "+label+" ")
		}
	}
	return "Length: " + strings.Join(parts, " ")
}

func (m Model) viewExercise() string {
	st := m.styles()
	var b strings.Builder

	b.WriteString(st.title.Render(m.ex.mode.Title()) + "\n")
	b.WriteString(m.ex.mode.Intro() + "\n\n")
	b.WriteString(m.lengthLine() + "\n\n")
	b.WriteString(m.viewTimer(lipgloss.Color(m.theme.ColorAccent)))

	if m.screen == domain.ScreenBodyReset {
		b.WriteString("\n" + st.title.Render("Routine") + "\n")
		for _, cue := range domain.BodyResetRoutine {
			line := fmt.Sprintf("%2d–%2ds  %s", cue.From, cue.To, cue.Text)
			if m.ex.running && m.ex.sec >= cue.From && m.ex.sec < cue.To {
				b.WriteString(st.accent.Render("▸ "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n" + st.help.Render(m.exerciseHelp()))
	return b.String()
}

func (m Model) exerciseHelp() string {
	switch {
	case m.ex.running:
		return "esc stop and go home"
	case m.ex.mode.FixedLength():
		return "enter start · esc home"
	default:
		return "enter start · l length · esc home"
	}
}

func (m Model) viewBrainDump() string {
	st := m.styles()
	var b strings.Builder

	b.WriteString(st.title.Render(m.ex.mode.Title()) + "\n")
	b.WriteString(m.ex.mode.Intro() + "\n\n")

	if m.ex.done {
		b.WriteString(st.success.Render(m.ex.mode.CompletionMessage()) + "\n\n")
		if strings.TrimSpace(m.dumpShown) != "" {
			b.WriteString(st.title.Render("Here's what you wrote:") + "\n")
			b.WriteString(st.box.Render(m.dumpShown) + "\n")
		}
		b.WriteString("\n" + st.help.Render("ctrl+t write again · esc home"))
		return b.String()
	}

	b.WriteString(m.dump.View() + "\n\n")
	if m.ex.running {
		b.WriteString(st.accent.Render(m.ex.mode.Headline(m.ex.tick)) + "\n")
		b.WriteString(m.ex.progress.ViewAs(m.ex.tick.Fraction) + "\n")
		b.WriteString("\n" + st.help.Render("esc stop and go home"))
		return b.String()
	}
	b.WriteString(m.lengthLine() + "\n")
	b.WriteString("\n" + st.help.Render("ctrl+t start timer · ctrl+l length · esc home"))
	return b.String()
}

func (m Model) viewGrounding() string {
	st := m.styles()
	var b strings.Builder

	b.WriteString(st.title.Render("🌿 5-4-3-2-1 Grounding") + "\n")
	b.WriteString("Use your senses to come back to the present moment.\n\n")
	for i, step := range domain.GroundingSteps {
		box := "[ ]"
		if m.grounded[i] {
			box = "[x]"
		}
		line := box + " " + step.Title
		if i == m.groundCursor {
			b.WriteString(st.accent.Render("▸ "+line) + "\n")
			b.WriteString("    " + st.help.Render(step.Description) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if m.groundedCount() == len(domain.GroundingSteps) {
		b.WriteString("\n" + st.success.Render("You're here, right now. 💜") + "\n")
	}
	b.WriteString("\n" + st.help.Render("↑/↓ move · space check · esc home"))
	return b.String()
}

func (m Model) viewSOS() string {
	st := m.styles()
	var b strings.Builder

	b.WriteString(st.sos.Render(m.ex.mode.Title()) + "\n")
	b.WriteString(m.ex.mode.Intro() + "\n\n")

	b.WriteString(st.title.Render("1. Breathe with me") + "  " + m.lengthLine() + "\n")
	b.WriteString(m.viewTimer(lipgloss.Color(m.theme.ColorSOS)) + "\n")

	b.WriteString(st.title.Render("2. Ground yourself") + "\n")
	for _, step := range domain.GroundingSteps {
		b.WriteString("  • " + step.Title + "\n")
	}

	b.WriteString("\n" + st.title.Render("3. One gentle next step") + "\n")
	b.WriteString(domain.SOSNextStep + "\n")

	help := "enter breathe · g grounding · esc home"
	if m.ex.running {
		help = "esc stop and go home"
	}
	b.WriteString("\n" + st.help.Render(help))
	return b.String()
}
