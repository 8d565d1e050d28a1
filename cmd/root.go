// Package cmd provides the CLI commands for the MindMinute application.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/adapters/tui"
	"github.com/xvierd/mindminute/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	jsonOutput bool
	logFile    string
	logLevel   string
	nameFlag   string
	openFlag   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mindminute",
	Short: "MindMinute - one-minute mental resets for your terminal",
	Long: `MindMinute is a small wellness companion: check in with your mood,
get a short personalized plan and run guided breathing, brain dump,
body reset, grounding and SOS exercises.

Run "mindminute" with no arguments to open the full-screen app.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "Name used in the greeting (overrides config)")
	rootCmd.Flags().StringVar(&openFlag, "open", "", "Screen to open first: breathing, brain_dump, body_reset, grounding, sos")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("MindMinute\nVersion: {{.Version}}\n")
}

// runApp opens the full-screen app and prints a session summary on exit.
func runApp(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	if openFlag != "" {
		screen, err := resolveScreen(openFlag)
		if err != nil {
			return err
		}
		if err := app.wellness.RequestNavigation(screen); err != nil {
			return err
		}
		app.wellness.ApplyNavigation()
	}

	if err := tui.Run(ctx, app.wellness, app.config); err != nil {
		return err
	}

	stats, err := app.wellness.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize session: %w", err)
	}
	printSummary(cmd.OutOrStdout(), stats, app.wellness.Streak())
	return nil
}

// printSummary writes the end-of-session recap. Nothing is printed for an
// empty session.
func printSummary(w io.Writer, stats domain.JournalStats, streak int) {
	if stats.Checkins == 0 && stats.ExercisesCompleted == 0 && stats.ExercisesCancelled == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  💜 Session summary")
	if stats.Checkins > 0 {
		fmt.Fprintf(w, "    Check-ins:      %d (average mood %.1f/4)\n", stats.Checkins, stats.AverageScore)
		if top, ok := stats.TopMood(); ok {
			fmt.Fprintf(w, "    Most often:     %s\n", top)
		}
		if len(stats.Moods) > 1 {
			emojis := make([]string, len(stats.Moods))
			for i, m := range stats.Moods {
				emojis[i] = m.Emoji()
			}
			fmt.Fprintf(w, "    Mood journey:   %s\n", strings.Join(emojis, " → "))
		}
		fmt.Fprintf(w, "    Streak:         %s\n", domain.StreakLabel(streak))
	}
	fmt.Fprintf(w, "    Exercises done: %d", stats.ExercisesCompleted)
	if stats.ExercisesCancelled > 0 {
		fmt.Fprintf(w, " (%d stopped early)", stats.ExercisesCancelled)
	}
	fmt.Fprintln(w)
	for i := len(stats.Runs) - 1; i >= 0; i-- {
		run := stats.Runs[i]
		fmt.Fprintf(w, "      %s · %ds · %s\n", run.Kind.Label(), int(run.Length.Seconds()), run.Status)
	}
	fmt.Fprintln(w)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
