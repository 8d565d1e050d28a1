package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/routine"
	"github.com/xvierd/mindminute/internal/services"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// tickArrivedMsg carries one tick read from the stream.
type tickArrivedMsg struct {
	tick domain.PhaseTick
}

// streamClosedMsg reports that the stream delivered its last tick.
type streamClosedMsg struct{}

func waitForTick(ticks <-chan domain.PhaseTick) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-ticks
		if !ok {
			return streamClosedMsg{}
		}
		return tickArrivedMsg{tick: tick}
	}
}

// InlineModel draws a running exercise in a few lines below the prompt.
type InlineModel struct {
	stream   *services.TickStream
	mode     routine.Mode
	tick     domain.PhaseTick
	started  bool
	stopping bool
	finished bool
	progress progress.Model
	width    int
	theme    config.ThemeConfig
}

// NewInlineModel creates the inline view of stream.
func NewInlineModel(stream *services.TickStream, mode routine.Mode, theme *config.ThemeConfig) InlineModel {
	resolved := resolveTheme(theme)
	start, end := resolved.CalmGradientStart, resolved.CalmGradientEnd
	if mode.Kind() == domain.ExerciseSOS {
		start, end = resolved.SOSGradientStart, resolved.SOSGradientEnd
	}

	w := getTerminalWidth()
	pbar := progress.New(progress.WithGradient(start, end))
	pbar.Width = max(20, w-16)

	return InlineModel{
		stream:   stream,
		mode:     mode,
		progress: pbar,
		width:    w,
		theme:    resolved,
	}
}

// Completed reports whether the final tick was delivered.
func (m InlineModel) Completed() bool {
	return m.finished && m.tick.Done
}

func (m InlineModel) Init() tea.Cmd {
	return waitForTick(m.stream.Ticks())
}

func (m InlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "c":
			// The stream closes once the timer notices; the pending
			// waitForTick then reports it.
			m.stopping = true
			m.stream.Cancel()
		}

	case tickArrivedMsg:
		m.tick = msg.tick
		m.started = true
		return m, waitForTick(m.stream.Ticks())

	case streamClosedMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m InlineModel) View() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	success := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSuccess)).Bold(true)

	var b strings.Builder

	if m.finished {
		if m.Completed() {
			b.WriteString(success.Render("  "+m.mode.CompletionMessage()) + "\n")
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("  Stopped after %d seconds. That still counts. 💜", m.tick.Tick+1)) + "\n")
		}
		return b.String()
	}

	if !m.started {
		b.WriteString(accent.Render("  "+m.mode.Title()) + "\n")
		b.WriteString(dim.Render("  "+m.mode.Intro()) + "\n")
		return b.String()
	}

	// Line 1: title + headline
	b.WriteString(accent.Render(fmt.Sprintf("  %s  %s", m.mode.Title(), m.mode.Headline(m.tick))))
	b.WriteString("\n")

	// Line 2: progress bar
	b.WriteString("  " + m.progress.ViewAs(m.tick.Fraction))
	b.WriteString(dim.Render(fmt.Sprintf("  %d%%", int(m.tick.Fraction*100))))
	b.WriteString("\n")

	// Line 3: caption and help
	help := "[q] stop"
	if m.stopping {
		help = "stopping…"
	}
	b.WriteString(dim.Render("  " + m.mode.Caption(m.tick) + " · " + help))
	b.WriteString("\n")

	return b.String()
}

// RunInline draws stream until it ends. It reports whether the exercise
// ran to completion.
func RunInline(ctx context.Context, stream *services.TickStream, mode routine.Mode, theme *config.ThemeConfig) (bool, error) {
	p := tea.NewProgram(NewInlineModel(stream, mode, theme), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		stream.Cancel()
		_ = stream.Wait()
		if ctx.Err() != nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to run exercise view: %w", err)
	}

	if werr := stream.Wait(); werr != nil {
		return false, nil
	}
	return final.(InlineModel).Completed(), nil
}
