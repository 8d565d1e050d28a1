package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
)

// ErrAborted is returned when the user leaves a prompt without choosing.
var ErrAborted = errors.New("aborted")

// otherNeed is the extra choice that opens a free-text prompt.
const otherNeed = "Something else…"

// PickerItem represents one option in the picker.
type PickerItem struct {
	Label string
	Desc  string
}

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Index   int
	Aborted bool
}

// pickerModel lists items vertically, or on one line when horizontal is set.
type pickerModel struct {
	title      string
	items      []PickerItem
	footer     string
	horizontal bool
	cursor     int
	aborted    bool
	theme      config.ThemeConfig
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	prev, next := "up", "down"
	if m.horizontal {
		prev, next = "left", "right"
	}

	switch s := key.String(); s {
	case prev, "k", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case next, "j", "l":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	default:
		// Digits jump straight to an item.
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(m.items) {
				m.cursor = i
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	if m.horizontal {
		b.WriteString(titleStyle.Render("  "+m.title) + "  ")
		for i, item := range m.items {
			if i == m.cursor {
				b.WriteString(activeStyle.Render(" ▸ " + item.Label + " "))
			} else {
				b.WriteString(dimStyle.Render("   " + item.Label + " "))
			}
		}
		b.WriteString("\n")
		if desc := m.items[m.cursor].Desc; desc != "" {
			b.WriteString(dimStyle.Render("  "+desc) + "\n")
		}
	} else {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("  "+m.title) + "\n\n")
		for i, item := range m.items {
			line := fmt.Sprintf("%-14s %s", item.Label, item.Desc)
			if i == m.cursor {
				b.WriteString("  " + activeStyle.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(dimStyle.Render("    "+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.footer != "" {
		b.WriteString(dimStyle.Render("  "+m.footer) + "\n")
	}
	arrows := "↑/↓"
	if m.horizontal {
		arrows = "←/→"
	}
	b.WriteString(dimStyle.Render("  "+arrows+" navigate · enter select · esc back") + "\n")

	return b.String()
}

func runPicker(m pickerModel) PickerResult {
	if len(m.items) == 0 {
		return PickerResult{Aborted: true}
	}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(pickerModel)
	if final.aborted {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: final.cursor}
}

// RunPicker launches an interactive arrow-key picker and returns the selected index.
func RunPicker(title string, items []PickerItem, footer string, theme *config.ThemeConfig) PickerResult {
	return runPicker(pickerModel{title: title, items: items, footer: footer, theme: resolveTheme(theme)})
}

// RunHorizontalPicker launches a compact one-line picker.
func RunHorizontalPicker(title string, items []PickerItem, footer string, theme *config.ThemeConfig) PickerResult {
	return runPicker(pickerModel{title: title, items: items, footer: footer, horizontal: true, theme: resolveTheme(theme)})
}

// MoodItems lists the moods as picker items.
func MoodItems() []PickerItem {
	items := make([]PickerItem, len(domain.AllMoods))
	for i, mood := range domain.AllMoods {
		items[i] = PickerItem{Label: string(mood)}
	}
	return items
}

// NeedItems lists the offered needs followed by the free-text choice.
func NeedItems() []PickerItem {
	items := make([]PickerItem, 0, len(domain.AllNeeds)+1)
	for i, need := range domain.AllNeeds {
		items = append(items, PickerItem{Label: fmt.Sprintf("%d.", i+1), Desc: string(need)})
	}
	return append(items, PickerItem{Label: fmt.Sprintf("%d.", len(domain.AllNeeds)+1), Desc: otherNeed})
}

// PickMood asks for a mood on one line.
func PickMood(theme *config.ThemeConfig) (domain.Mood, error) {
	res := RunHorizontalPicker("How are you feeling?", MoodItems(), "", theme)
	if res.Aborted {
		return "", ErrAborted
	}
	return domain.AllMoods[res.Index], nil
}

// PickNeed asks what the user needs. The last choice takes free text.
func PickNeed(theme *config.ThemeConfig) (domain.Need, error) {
	res := RunPicker("What do you need right now?", NeedItems(), "", theme)
	if res.Aborted {
		return "", ErrAborted
	}
	if res.Index < len(domain.AllNeeds) {
		return domain.AllNeeds[res.Index], nil
	}

	text := RunTextPrompt("In a few words:", "e.g. I can't stop overthinking", theme)
	if text.Aborted || text.Value == "" {
		return "", ErrAborted
	}
	return domain.Need(text.Value), nil
}

// TextPromptResult holds the outcome of a text prompt.
type TextPromptResult struct {
	Value   string
	Aborted bool
}

type textPromptModel struct {
	title   string
	input   textinput.Model
	aborted bool
	theme   config.ThemeConfig
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	return "\n" + titleStyle.Render("  "+m.title) + " " + m.input.View() + "\n\n" +
		dimStyle.Render("  enter confirm · esc back") + "\n"
}

// RunTextPrompt launches a styled text input prompt.
func RunTextPrompt(title string, placeholder string, theme *config.ThemeConfig) TextPromptResult {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 50
	ti.Focus()

	result, err := tea.NewProgram(textPromptModel{title: title, input: ti, theme: resolveTheme(theme)}).Run()
	if err != nil {
		return TextPromptResult{Aborted: true}
	}

	final := result.(textPromptModel)
	if final.aborted {
		return TextPromptResult{Aborted: true}
	}
	return TextPromptResult{Value: strings.TrimSpace(final.input.Value())}
}
