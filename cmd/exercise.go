package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/adapters/tui"
	"github.com/xvierd/mindminute/internal/domain"
)

var (
	exerciseSeconds int
	previewOnly     bool
)

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Guided 4-4-6 breathing",
	Long:  `Breathe along with an Inhale 4s, Hold 4s, Exhale 6s rhythm for 30, 60 or 90 seconds.`,
	Args:  cobra.NoArgs,
	RunE:  exerciseRunner(domain.ExerciseBreathing),
}

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Gentle body reset stretch routine",
	Args:  cobra.NoArgs,
	RunE:  exerciseRunner(domain.ExerciseBodyReset),
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Brain dump countdown",
	Long:  `Write down whatever is on your mind until the timer runs out. Nothing you write is stored.`,
	Args:  cobra.NoArgs,
	RunE:  exerciseRunner(domain.ExerciseBrainDump),
}

var sosCmd = &cobra.Command{
	Use:   "sos",
	Short: "30 second calm-down for overwhelming moments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := exerciseRunner(domain.ExerciseSOS)(cmd, args); err != nil {
			return err
		}
		if previewOnly || jsonOutput {
			return nil
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		printGrounding(w)
		fmt.Fprintf(w, "\n  One gentle next step: %s\n\n", domain.SOSNextStep)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{breatheCmd, bodyCmd, dumpCmd} {
		c.Flags().IntVarP(&exerciseSeconds, "seconds", "s", 0, "Session length in seconds (default from config)")
	}
	for _, c := range []*cobra.Command{breatheCmd, bodyCmd, dumpCmd, sosCmd} {
		c.Flags().BoolVar(&previewOnly, "preview", false, "Print the phase timeline without running it")
		rootCmd.AddCommand(c)
	}
}

// exerciseRunner returns a RunE that previews or runs kind inline.
func exerciseRunner(kind domain.ExerciseKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if previewOnly {
			spec, err := app.wellness.PreviewExercise(kind, exerciseSeconds)
			if err != nil {
				return err
			}
			return printTimeline(cmd.OutOrStdout(), spec)
		}

		ctx := setupSignalHandler()
		stream, err := app.wellness.StartExercise(ctx, kind, exerciseSeconds)
		if err != nil {
			return err
		}

		mode := app.catalog.Mode(kind)
		completed, err := tui.RunInline(ctx, stream, mode, &app.config.Theme)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"exercise":  kind,
				"completed": completed,
			})
		}
		return nil
	}
}

// printTimeline lists one line per phase segment of spec.
func printTimeline(w io.Writer, spec domain.ExerciseSpec) error {
	timeline := spec.Timeline()
	if jsonOutput {
		return writeJSON(w, map[string]any{
			"exercise": spec.Kind,
			"seconds":  spec.Total,
			"timeline": timeline,
		})
	}

	fmt.Fprintf(w, "  %s · %d seconds\n", spec.Kind.Label(), spec.Total)
	for _, seg := range timeline {
		phase := seg.Phase
		if phase == "" {
			phase = "Timer"
		}
		fmt.Fprintf(w, "    %3ds  %-14s %ds\n", seg.Start, phase, seg.Seconds)
	}
	return nil
}
