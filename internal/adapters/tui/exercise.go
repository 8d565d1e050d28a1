package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/routine"
)

// exerciseState is the timed exercise hosted by the current screen.
type exerciseState struct {
	mode     routine.Mode
	length   int
	spec     domain.ExerciseSpec
	run      *domain.ExerciseRun
	gen      int
	sec      int
	tick     domain.PhaseTick
	running  bool
	done     bool
	progress progress.Model
}

func (m Model) newExercise(kind domain.ExerciseKind, suggested int) exerciseState {
	mode := m.catalog.Mode(kind)
	length := mode.DefaultLength()
	if suggested > 0 && !mode.FixedLength() {
		length = suggested
	}

	start, end := m.theme.CalmGradientStart, m.theme.CalmGradientEnd
	if kind == domain.ExerciseSOS {
		start, end = m.theme.SOSGradientStart, m.theme.SOSGradientEnd
	}
	bar := progress.New(progress.WithGradient(start, end))
	bar.Width = progressWidth(m.width)

	return exerciseState{mode: mode, length: length, progress: bar}
}

func progressWidth(width int) int {
	if width == 0 {
		return 40
	}
	return min(60, max(20, width-16))
}

// startExercise journals a run and schedules its first tick.
func (m *Model) startExercise() tea.Cmd {
	if m.ex.mode == nil || m.ex.running {
		return nil
	}

	run, spec, err := m.app.Exercises().Begin(m.ctx, m.ex.mode.Kind(), m.ex.length)
	if err != nil {
		m.status = err.Error()
		return nil
	}

	m.gen++
	m.ex.gen = m.gen
	m.ex.run = run
	m.ex.spec = spec
	m.ex.sec = 0
	m.ex.tick = spec.At(0)
	m.ex.running = true
	m.ex.done = false
	return tickCmd(m.ex.gen)
}

// advanceExercise moves to the next second. The final tick stays on screen
// for a full second before the exercise counts as complete.
func (m *Model) advanceExercise(msg exerciseTickMsg) tea.Cmd {
	if !m.ex.running || msg.gen != m.ex.gen {
		return nil
	}

	m.ex.sec++
	if m.ex.sec >= m.ex.spec.Total {
		m.ex.running = false
		m.ex.done = true
		m.app.Exercises().Finish(m.ctx, m.ex.run, true, m.ex.spec.Total)
		if m.ex.mode.Kind() == domain.ExerciseBrainDump {
			m.dumpShown = m.dump.Value()
			m.dump.Blur()
		}
		return nil
	}

	m.ex.tick = m.ex.spec.At(m.ex.sec)
	return tickCmd(m.ex.gen)
}

// abandonExercise cancels a running exercise. Its pending tick is dropped
// because the generation moves on.
func (m *Model) abandonExercise() {
	if !m.ex.running {
		return
	}
	m.app.Exercises().Finish(m.ctx, m.ex.run, false, m.ex.sec+1)
	m.ex.running = false
	m.gen++
}

func (m Model) updateExercise(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.abandonExercise()
		return m, tea.Quit
	case "esc", "backspace":
		m.app.BackToHome()
	case "enter", " ":
		if !m.ex.running {
			cmd := m.startExercise()
			return m, cmd
		}
	case "l":
		if !m.ex.running && m.ex.mode != nil {
			m.ex.length = routine.NextLength(m.ex.mode, m.ex.length)
			m.ex.done = false
		}
	case "g":
		if m.screen == domain.ScreenSOS {
			m.navigate(domain.ScreenGrounding, 0)
		}
	}
	return m, nil
}

func (m Model) updateBrainDump(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.app.BackToHome()
		return m, nil
	case "ctrl+t":
		if m.ex.running {
			return m, nil
		}
		var focus tea.Cmd
		if m.ex.done {
			m.dump.Reset()
			m.dumpShown = ""
			focus = m.dump.Focus()
		}
		start := m.startExercise()
		return m, tea.Batch(focus, start)
	case "ctrl+l":
		if !m.ex.running {
			m.ex.length = routine.NextLength(m.ex.mode, m.ex.length)
		}
		return m, nil
	}

	if m.ex.done {
		return m, nil
	}
	var cmd tea.Cmd
	m.dump, cmd = m.dump.Update(msg)
	return m, cmd
}

func (m Model) updateGrounding(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.app.BackToHome()
	case "up", "k":
		if m.groundCursor > 0 {
			m.groundCursor--
		}
	case "down", "j":
		if m.groundCursor < len(domain.GroundingSteps)-1 {
			m.groundCursor++
		}
	case " ", "enter", "x":
		m.grounded[m.groundCursor] = !m.grounded[m.groundCursor]
	}
	return m, nil
}

// groundedCount is the number of checked grounding senses.
func (m Model) groundedCount() int {
	n := 0
	for _, ok := range m.grounded {
		if ok {
			n++
		}
	}
	return n
}
