package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/mindminute/internal/domain"
)

// quickTools maps home-screen shortcuts to screens.
var quickTools = map[string]domain.Screen{
	"b": domain.ScreenBreathing,
	"d": domain.ScreenBrainDump,
	"r": domain.ScreenBodyReset,
	"g": domain.ScreenGrounding,
	"s": domain.ScreenSOS,
}

func (m Model) updateHome(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editingName {
		switch msg.String() {
		case "enter":
			m.name = strings.TrimSpace(m.nameInput.Value())
			m.editingName = false
			m.nameInput.Blur()
			return m, nil
		case "esc":
			m.nameInput.SetValue(m.name)
			m.editingName = false
			m.nameInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "n":
		m.editingName = true
		cmd := m.nameInput.Focus()
		return m, cmd
	case "left", "h":
		if m.moodCursor > 0 {
			m.moodCursor--
		}
	case "right", "l":
		if m.moodCursor < len(domain.AllMoods)-1 {
			m.moodCursor++
		}
	case "up", "k":
		if m.needCursor > 0 {
			m.needCursor--
		}
	case "down", "j":
		if m.needCursor < len(domain.AllNeeds)-1 {
			m.needCursor++
		}
	case "enter":
		res, err := m.app.LogMood(m.ctx, m.selectedMood())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.checkin = &res
		m.status = ""
	case "p":
		plan := m.app.GetPlan(m.selectedMood(), m.selectedNeed())
		m.plan = &plan
	case "1", "2", "3", "4":
		if m.plan == nil {
			return m, nil
		}
		if i := int(key[0] - '1'); i < len(m.plan.Steps) {
			s := m.plan.Steps[i]
			m.navigate(s.Target, s.Seconds)
		}
	default:
		if screen, ok := quickTools[key]; ok {
			m.navigate(screen, 0)
		}
	}
	return m, nil
}

func (m Model) selectedMood() domain.Mood {
	return domain.AllMoods[m.moodCursor]
}

func (m Model) selectedNeed() domain.Need {
	return domain.AllNeeds[m.needCursor]
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws one block per score on the 1..4 mood scale.
func sparkline(scores []int) string {
	var b strings.Builder
	for _, s := range scores {
		s = min(4, max(1, s))
		b.WriteRune(sparkBlocks[(s-1)*(len(sparkBlocks)-1)/3])
	}
	return b.String()
}
