package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/mindminute/internal/adapters/storage"
	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
	"github.com/xvierd/mindminute/internal/routine"
	"github.com/xvierd/mindminute/internal/services"
)

// Tuesday morning.
var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) NewTicker(d time.Duration) ports.Ticker {
	return ports.SystemClock{}.NewTicker(d)
}

func newTestApp(t *testing.T) (*services.Wellness, *config.Config) {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.DefaultConfig()
	cfg.User.Name = "Sam"
	return services.NewWellness(store, routine.NewCatalog(cfg), fixedClock{now: testNow}), cfg
}

func newTestModel(t *testing.T) (Model, *services.Wellness) {
	t.Helper()
	app, cfg := newTestApp(t)
	return NewModel(context.Background(), app, cfg), app
}

func TestResolveTheme(t *testing.T) {
	got := resolveTheme(&config.ThemeConfig{ColorAccent: "#123456"})
	if got.ColorAccent != "#123456" {
		t.Errorf("ColorAccent = %q, want custom value kept", got.ColorAccent)
	}
	if got.IconApp != config.DefaultThemeConfig().IconApp {
		t.Errorf("IconApp = %q, want default", got.IconApp)
	}
	if resolveTheme(nil) != config.DefaultThemeConfig() {
		t.Error("resolveTheme(nil) should return the default theme")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{30, "0:30"},
		{90, "1:30"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatClock(tt.seconds); got != tt.want {
				t.Errorf("formatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRenderBigDigits(t *testing.T) {
	narrow := renderBigDigits("45", lipgloss.Color("#fff"), 30)
	if strings.Contains(narrow, "\n") || !strings.Contains(narrow, "45") {
		t.Errorf("narrow render = %q, want a single line", narrow)
	}

	wide := renderBigDigits("1:30", lipgloss.Color("#fff"), 80)
	if lines := strings.Split(wide, "\n"); len(lines) != 5 {
		t.Errorf("wide render has %d lines, want 5", len(lines))
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline([]int{1, 2, 3, 4}); got != "▁▃▅█" {
		t.Errorf("sparkline() = %q", got)
	}
	if got := sparkline(nil); got != "" {
		t.Errorf("sparkline(nil) = %q, want empty", got)
	}
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Screen() != domain.ScreenHome {
		t.Errorf("Screen() = %s, want home", m.Screen())
	}
	if m.name != "Sam" {
		t.Errorf("name = %q, want the configured name", m.name)
	}
}

func TestNewModel_OpensPendingScreen(t *testing.T) {
	app, cfg := newTestApp(t)
	if err := app.RequestNavigation(domain.ScreenSOS); err != nil {
		t.Fatal(err)
	}
	app.ApplyNavigation()

	m := NewModel(context.Background(), app, cfg)
	if m.Screen() != domain.ScreenSOS {
		t.Fatalf("Screen() = %s, want sos", m.Screen())
	}
	if !strings.Contains(m.View(), "SOS Calm Down") {
		t.Error("SOS view should render on startup")
	}
}

func TestModel_View_HomeGreeting(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{
		"Hey Sam, happy Tuesday!",
		"gentle morning",
		"How are you feeling?",
		string(domain.NeedCalm),
	} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestModel_View_NoName(t *testing.T) {
	app, cfg := newTestApp(t)
	cfg.User.Name = ""
	m := NewModel(context.Background(), app, cfg)

	if !strings.Contains(m.View(), "Enter your name to begin") {
		t.Error("home view should invite the user to enter a name")
	}
}

func TestModel_View_Sections(t *testing.T) {
	tests := []struct {
		screen domain.Screen
		want   []string
	}{
		{domain.ScreenBreathing, []string{"Breathing Exercise", "Inhale 4s", "[60s]"}},
		{domain.ScreenBodyReset, []string{"Body Reset", "Shoulder rolls", "Neck circles"}},
		{domain.ScreenBrainDump, []string{"Brain Dump", "ctrl+t start timer"}},
		{domain.ScreenGrounding, []string{"5 things you can see", "1 thing you can taste"}},
		{domain.ScreenSOS, []string{"1. Breathe with me", "2. Ground yourself", "3. One gentle next step", domain.SOSNextStep}},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			m, app := newTestModel(t)
			if err := app.RequestNavigation(tt.screen); err != nil {
				t.Fatal(err)
			}
			updated, _ := m.Update(tea.WindowSizeMsg{})
			view := updated.(Model).View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("%s view missing %q", tt.screen, want)
				}
			}
		})
	}
}

func newTestStream(t *testing.T, kind domain.ExerciseKind, total int) (*services.TickStream, routine.Mode) {
	t.Helper()
	cat := routine.NewCatalog(nil)
	spec, err := cat.Spec(kind, total)
	if err != nil {
		t.Fatal(err)
	}
	stream := services.NewPhaseTimer(nil).Stream(context.Background(), spec)
	t.Cleanup(func() {
		stream.Cancel()
		_ = stream.Wait()
	})
	return stream, cat.Mode(kind)
}

func TestInlineModel_Completed(t *testing.T) {
	stream, mode := newTestStream(t, domain.ExerciseBreathing, 30)
	m := NewInlineModel(stream, mode, nil)

	if !strings.Contains(m.View(), "Follow the rhythm") {
		t.Error("inline view should show the intro before the first tick")
	}

	spec, _ := routine.NewCatalog(nil).Spec(domain.ExerciseBreathing, 30)
	updated, _ := m.Update(tickArrivedMsg{tick: spec.At(0)})
	m = updated.(InlineModel)
	if view := m.View(); !strings.Contains(view, "Inhale…") || !strings.Contains(view, "3%") {
		t.Errorf("inline view after first tick = %q", view)
	}

	updated, _ = m.Update(tickArrivedMsg{tick: spec.At(29)})
	if last := updated.(InlineModel); last.Completed() || strings.Contains(last.View(), "Session complete") {
		t.Error("the final tick should stay on screen until the stream closes")
	}
	updated, cmd := updated.Update(streamClosedMsg{})
	m = updated.(InlineModel)
	if cmd == nil {
		t.Fatal("stream close should quit the program")
	}
	if !m.Completed() {
		t.Error("Completed() should be true after the final tick")
	}
	if !strings.Contains(m.View(), "Session complete 💜") {
		t.Errorf("inline view = %q, want completion message", m.View())
	}
}

func TestInlineModel_StopEarly(t *testing.T) {
	stream, mode := newTestStream(t, domain.ExerciseBodyReset, 60)
	m := NewInlineModel(stream, mode, nil)

	spec, _ := routine.NewCatalog(nil).Spec(domain.ExerciseBodyReset, 60)
	updated, _ := m.Update(tickArrivedMsg{tick: spec.At(4)})
	updated, _ = updated.Update(key("q"))
	m = updated.(InlineModel)
	if !m.stopping || !strings.Contains(m.View(), "stopping…") {
		t.Error("q should start stopping the stream")
	}
	if err := stream.Wait(); err == nil {
		t.Error("cancelled stream should report an error")
	}

	updated, _ = m.Update(streamClosedMsg{})
	m = updated.(InlineModel)
	if m.Completed() {
		t.Error("Completed() should be false for a stopped exercise")
	}
	if !strings.Contains(m.View(), "Stopped after 5 seconds") {
		t.Errorf("inline view = %q", m.View())
	}
}
