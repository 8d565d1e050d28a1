// Package mcp exposes MindMinute over the Model Context Protocol so an
// assistant can log moods, fetch plans and steer the app.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	wellness ports.WellnessProvider
	ctx      context.Context
	cancel   context.CancelFunc
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// NewServer creates a new MCP server instance.
func NewServer(wellness ports.WellnessProvider, version string) *Server {
	s := &Server{wellness: wellness}

	s.server = server.NewMCPServer(
		"mindminute",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	moodNames := make([]string, len(domain.AllMoods))
	for i, m := range domain.AllMoods {
		moodNames[i] = strings.ToLower(m.Word())
	}
	screenNames := make([]string, len(domain.AllScreens))
	for i, sc := range domain.AllScreens {
		screenNames[i] = string(sc)
	}
	exerciseNames := make([]string, len(domain.AllExercises))
	for i, k := range domain.AllExercises {
		exerciseNames[i] = string(k)
	}

	s.server.AddTool(
		mcp.NewTool(
			"log_mood",
			mcp.WithDescription("Record a mood check-in and get the current streak and an affirmation"),
			mcp.WithString(
				"mood",
				mcp.Required(),
				mcp.Description("How the user feels right now"),
				mcp.Enum(moodNames...),
			),
		),
		s.handleLogMood,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_plan",
			mcp.WithDescription("Recommend a short sequence of self-care exercises for a mood and a stated need"),
			mcp.WithString(
				"mood",
				mcp.Required(),
				mcp.Description("The user's mood"),
				mcp.Enum(moodNames...),
			),
			mcp.WithString(
				"need",
				mcp.Description("What the user needs, e.g. \"I want to calm down\" or \"My body feels tense\""),
			),
		),
		s.handleGetPlan,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_streak",
			mcp.WithDescription("Get the number of consecutive days ending today with at least one check-in"),
		),
		s.handleGetStreak,
	)

	s.server.AddTool(
		mcp.NewTool(
			"mood_history",
			mcp.WithDescription("List this session's check-ins and their scores"),
		),
		s.handleMoodHistory,
	)

	s.server.AddTool(
		mcp.NewTool(
			"exercise_preview",
			mcp.WithDescription("Show the phase timeline of a timed exercise without running it"),
			mcp.WithString(
				"kind",
				mcp.Required(),
				mcp.Description("The exercise to preview"),
				mcp.Enum(exerciseNames...),
			),
			mcp.WithNumber(
				"seconds",
				mcp.Description("Exercise length in seconds (default depends on the exercise)"),
			),
		),
		s.handleExercisePreview,
	)

	s.server.AddTool(
		mcp.NewTool(
			"navigate",
			mcp.WithDescription("Switch the app to another screen"),
			mcp.WithString(
				"screen",
				mcp.Required(),
				mcp.Description("The screen to show"),
				mcp.Enum(screenNames...),
			),
		),
		s.handleNavigate,
	)

	s.server.AddTool(
		mcp.NewTool(
			"current_screen",
			mcp.WithDescription("Get the screen the app is showing"),
		),
		s.handleCurrentScreen,
	)

	s.server.AddTool(
		mcp.NewTool(
			"journal_stats",
			mcp.WithDescription("Summarize this session's check-ins and exercises"),
		),
		s.handleJournalStats,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

func (s *Server) handleLogMood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("mood")
	if err != nil {
		return mcp.NewToolResultError("mood is required: " + err.Error()), nil
	}
	mood, err := domain.ParseMood(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.wellness.LogMood(ctx, mood)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to log mood: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"id":           res.Entry.ID,
		"mood":         string(res.Entry.Mood),
		"score":        res.Entry.Score,
		"date":         res.Entry.Date,
		"time":         res.Entry.Time,
		"streak":       res.Streak,
		"streak_label": domain.StreakLabel(res.Streak),
		"affirmation":  res.Affirmation,
	})
}

func (s *Server) handleGetPlan(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("mood")
	if err != nil {
		return mcp.NewToolResultError("mood is required: " + err.Error()), nil
	}
	mood, err := domain.ParseMood(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	need := domain.Need(request.GetString("need", ""))

	plan := s.wellness.GetPlan(mood, need)
	steps := make([]map[string]any, 0, len(plan.Steps))
	for _, st := range plan.Steps {
		steps = append(steps, map[string]any{
			"label":   st.Label,
			"button":  st.Button,
			"screen":  string(st.Target),
			"seconds": st.Seconds,
		})
	}

	result := map[string]any{
		"mood":  string(plan.Mood),
		"need":  string(plan.Need),
		"steps": steps,
	}
	if plan.IsEmpty() {
		result["note"] = "No exercise matched this need. Try one that mentions calm, thoughts or body."
	}
	return jsonResult(result)
}

func (s *Server) handleGetStreak(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak := s.wellness.Streak()
	return jsonResult(map[string]any{
		"streak": streak,
		"label":  domain.StreakLabel(streak),
	})
}

func (s *Server) handleMoodHistory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history := s.wellness.History()
	entries := make([]map[string]any, 0, len(history))
	for _, e := range history {
		entries = append(entries, map[string]any{
			"date":  e.Date,
			"time":  e.Time,
			"mood":  string(e.Mood),
			"score": e.Score,
		})
	}
	return jsonResult(map[string]any{
		"entries": entries,
		"scores":  s.wellness.MoodHistoryScores(),
		"count":   len(entries),
	})
}

func (s *Server) handleExercisePreview(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind is required: " + err.Error()), nil
	}
	kind, err := domain.ValidateExerciseKind(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	seconds := request.GetFloat("seconds", 0)
	if !(seconds <= domain.MaxExerciseSeconds) {
		return mcp.NewToolResultError(fmt.Sprintf("%v: seconds must be at most %d", domain.ErrInvalidDuration, domain.MaxExerciseSeconds)), nil
	}

	spec, err := s.wellness.PreviewExercise(kind, int(seconds))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"kind":     string(spec.Kind),
		"seconds":  spec.Total,
		"cycle":    spec.Sequence.CycleLength(),
		"timeline": spec.Timeline(),
	})
}

func (s *Server) handleNavigate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("screen")
	if err != nil {
		return mcp.NewToolResultError("screen is required: " + err.Error()), nil
	}
	screen, err := domain.ParseScreen(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.wellness.RequestNavigation(screen); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"screen": string(s.wellness.ApplyNavigation()),
	})
}

func (s *Server) handleCurrentScreen(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	screen := s.wellness.CurrentScreen()
	return jsonResult(map[string]any{
		"screen": string(screen),
		"label":  screen.Label(),
	})
}

func (s *Server) handleJournalStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.wellness.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal stats: %w", err)
	}

	byMood := make(map[string]int, len(stats.ByMood))
	for m, n := range stats.ByMood {
		byMood[string(m)] = n
	}
	moods := make([]string, len(stats.Moods))
	for i, m := range stats.Moods {
		moods[i] = string(m)
	}
	runs := make([]map[string]any, len(stats.Runs))
	for i, run := range stats.Runs {
		runs[i] = map[string]any{
			"kind":    string(run.Kind),
			"seconds": int(run.Length.Seconds()),
			"status":  string(run.Status),
			"ticks":   run.TicksServed,
		}
	}
	result := map[string]any{
		"checkins":            stats.Checkins,
		"average_score":       stats.AverageScore,
		"by_mood":             byMood,
		"days":                stats.Days,
		"moods":               moods,
		"exercises_completed": stats.ExercisesCompleted,
		"exercises_cancelled": stats.ExercisesCancelled,
		"runs":                runs,
	}
	if top, ok := stats.TopMood(); ok {
		result["top_mood"] = string(top)
	}
	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
