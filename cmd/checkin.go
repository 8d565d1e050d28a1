package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/adapters/tui"
	"github.com/xvierd/mindminute/internal/domain"
)

var needFlag string

var checkinCmd = &cobra.Command{
	Use:   "checkin [mood]",
	Short: "Log how you feel and get a mini plan",
	Long: `Record a mood check-in, get an affirmation and, when you say what you
need, a short plan of exercises.

Moods: good, okay, stressed, overwhelmed, tired (abbreviations work).
Without arguments you are asked interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		mood, err := moodFromArgs(args)
		if err != nil {
			return err
		}

		res, err := app.wellness.LogMood(ctx, mood)
		if err != nil {
			return fmt.Errorf("failed to log mood: %w", err)
		}

		var plan *domain.Plan
		need, err := needFromFlag(cmd.Flags().Changed("need"))
		switch {
		case errors.Is(err, tui.ErrAborted):
		case err != nil:
			return err
		default:
			p := app.wellness.GetPlan(mood, need)
			plan = &p
		}

		if jsonOutput {
			out := map[string]any{
				"mood":        res.Entry.Mood,
				"score":       res.Entry.Score,
				"date":        res.Entry.Date,
				"time":        res.Entry.Time,
				"streak":      res.Streak,
				"affirmation": res.Affirmation,
			}
			if plan != nil {
				out["plan"] = planJSON(*plan)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		}

		w := cmd.OutOrStdout()
		accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorAccent))
		fmt.Fprintf(w, "\n  %s logged at %s\n", res.Entry.Mood, res.Entry.Time)
		fmt.Fprintf(w, "  %s %s\n", app.config.Theme.IconAffirmation, accent.Render(res.Affirmation))
		fmt.Fprintf(w, "  %s Streak: %s\n", app.config.Theme.IconStreak, domain.StreakLabel(res.Streak))
		if plan != nil {
			fmt.Fprintln(w)
			printPlan(w, *plan)
		}
		fmt.Fprintln(w)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <mood> [need...]",
	Short: "Show the recommended plan without logging a check-in",
	Example: `  mindminute plan stressed calm
  mindminute plan overwhelmed "my thoughts are racing"
  mindminute plan tired`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := resolveMood(args[0])
		if err != nil {
			return err
		}
		need := resolveNeed(strings.Join(args[1:], " "))

		plan := app.wellness.GetPlan(mood, need)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), planJSON(plan))
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

func init() {
	checkinCmd.Flags().StringVarP(&needFlag, "need", "n", "", "What you need right now (e.g. calm, thoughts, body)")
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(planCmd)
}

func isInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// moodFromArgs resolves the mood argument, or asks for it on a terminal.
func moodFromArgs(args []string) (domain.Mood, error) {
	if len(args) == 1 {
		return resolveMood(args[0])
	}
	if !isInteractive() {
		return "", errors.New("mood is required when not running in a terminal")
	}
	return tui.PickMood(&app.config.Theme)
}

// needFromFlag resolves --need, or asks for it on a terminal. It returns
// tui.ErrAborted when no need was given, which skips the plan.
func needFromFlag(given bool) (domain.Need, error) {
	if given {
		if strings.TrimSpace(needFlag) == "" {
			return "", errors.New("--need must not be empty")
		}
		return resolveNeed(needFlag), nil
	}
	if !isInteractive() || jsonOutput {
		return "", tui.ErrAborted
	}
	return tui.PickNeed(&app.config.Theme)
}

func printPlan(w io.Writer, plan domain.Plan) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorHelp))

	fmt.Fprintln(w, title.Render(fmt.Sprintf("  %s Your mini plan", app.config.Theme.IconPlan)))
	if plan.IsEmpty() {
		fmt.Fprintln(w, dim.Render("    No plan for that combination yet. Try saying calm, thoughts or body."))
		return
	}
	for i, s := range plan.Steps {
		fmt.Fprintf(w, "    %d. %s  %s\n", i+1, s.Label, dim.Render("mindminute "+commandFor(s.Target, s.Seconds)))
	}
}

// commandFor is the CLI invocation that runs a plan step.
func commandFor(screen domain.Screen, seconds int) string {
	var name string
	switch screen {
	case domain.ScreenBreathing:
		name = "breathe"
	case domain.ScreenBrainDump:
		name = "dump"
	case domain.ScreenBodyReset:
		name = "body"
	case domain.ScreenGrounding:
		return "ground"
	case domain.ScreenSOS:
		return "sos"
	default:
		return "--open " + string(screen)
	}
	if seconds > 0 {
		return fmt.Sprintf("%s -s %d", name, seconds)
	}
	return name
}

func planJSON(plan domain.Plan) map[string]any {
	steps := make([]map[string]any, len(plan.Steps))
	for i, s := range plan.Steps {
		steps[i] = map[string]any{
			"label":   s.Label,
			"button":  s.Button,
			"target":  s.Target,
			"seconds": s.Seconds,
			"command": "mindminute " + commandFor(s.Target, s.Seconds),
		}
	}
	return map[string]any{
		"mood":  plan.Mood,
		"need":  plan.Need,
		"steps": steps,
	}
}
