package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/services"
)

// Run starts the full-screen app and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, app *services.Wellness, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(ctx, app, cfg), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.abandonExercise()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
