// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/observability"
	"github.com/xvierd/mindminute/internal/routine"
	"github.com/xvierd/mindminute/internal/services"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// exerciseTickMsg advances the exercise started under generation gen.
// Ticks from an older generation belong to an abandoned run and are dropped.
type exerciseTickMsg struct {
	gen int
}

// Model represents the TUI state.
type Model struct {
	ctx     context.Context
	app     *services.Wellness
	catalog *routine.Catalog
	theme   config.ThemeConfig

	screen domain.Screen
	width  int
	height int

	// Home
	name        string
	nameInput   textinput.Model
	editingName bool
	moodCursor  int
	needCursor  int
	checkin     *domain.CheckinResult
	plan        *domain.Plan
	status      string

	// Length suggested by the plan step that opened the current screen.
	suggested int

	// Timed exercises
	gen int
	ex  exerciseState

	// Grounding
	groundCursor int
	grounded     []bool

	// Brain dump
	dump      textarea.Model
	dumpShown string
}

// NewModel creates a new TUI model over the application state.
func NewModel(ctx context.Context, app *services.Wellness, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ni := textinput.New()
	ni.Placeholder = "Your name"
	ni.CharLimit = 40
	ni.Width = 30
	ni.SetValue(cfg.User.Name)

	ta := textarea.New()
	ta.Placeholder = "Type anything that's on your mind…"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(6)

	m := Model{
		ctx:       ctx,
		app:       app,
		catalog:   routine.NewCatalog(cfg),
		theme:     resolveTheme(&cfg.Theme),
		name:      cfg.User.Name,
		nameInput: ni,
		grounded:  make([]bool, len(domain.GroundingSteps)),
		dump:      ta,
	}
	m.enter(app.CurrentScreen())
	return m
}

// Screen returns the screen being shown.
func (m Model) Screen() domain.Screen {
	return m.screen
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model. Navigation requested while
// handling msg is applied once, right before the next render.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ex.progress.Width = progressWidth(msg.Width)
		m.dump.SetWidth(min(70, max(20, msg.Width-8)))

	case exerciseTickMsg:
		cmd = m.advanceExercise(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.abandonExercise()
			return m, tea.Quit
		}
		switch m.screen {
		case domain.ScreenHome:
			m, cmd = m.updateHome(msg)
		case domain.ScreenGrounding:
			m, cmd = m.updateGrounding(msg)
		case domain.ScreenBrainDump:
			m, cmd = m.updateBrainDump(msg)
		default:
			m, cmd = m.updateExercise(msg)
		}

	default:
		if m.screen == domain.ScreenBrainDump {
			m.dump, cmd = m.dump.Update(msg)
		} else if m.editingName {
			m.nameInput, cmd = m.nameInput.Update(msg)
		}
	}

	return m.applyNavigation(cmd)
}

// navigate queues a screen change.
func (m *Model) navigate(screen domain.Screen, suggested int) {
	if err := m.app.RequestNavigation(screen); err != nil {
		m.status = err.Error()
		return
	}
	m.suggested = suggested
}

func (m Model) applyNavigation(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	next := m.app.ApplyNavigation()
	if next == m.screen {
		return m, cmd
	}

	observability.Logger().Debug("screen changed", "from", string(m.screen), "to", string(next))
	m.abandonExercise()
	m.status = ""
	enterCmd := m.enter(next)
	return m, tea.Batch(cmd, enterCmd)
}

// enter resets the state owned by screen and makes it current.
func (m *Model) enter(screen domain.Screen) tea.Cmd {
	m.screen = screen
	m.dump.Blur()
	suggested := m.suggested
	m.suggested = 0

	switch screen {
	case domain.ScreenBreathing:
		m.ex = m.newExercise(domain.ExerciseBreathing, suggested)
	case domain.ScreenBodyReset:
		m.ex = m.newExercise(domain.ExerciseBodyReset, suggested)
	case domain.ScreenSOS:
		m.ex = m.newExercise(domain.ExerciseSOS, suggested)
	case domain.ScreenBrainDump:
		m.ex = m.newExercise(domain.ExerciseBrainDump, suggested)
		m.dump.Reset()
		m.dumpShown = ""
		return m.dump.Focus()
	case domain.ScreenGrounding:
		m.groundCursor = 0
		m.grounded = make([]bool, len(domain.GroundingSteps))
	}
	return nil
}

// tickCmd schedules the next exercise tick for generation gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return exerciseTickMsg{gen: gen}
	})
}
