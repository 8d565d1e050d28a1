package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/domain"
)

var groundCmd = &cobra.Command{
	Use:   "ground",
	Short: "The 5-4-3-2-1 grounding checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), domain.GroundingSteps)
		}
		printGrounding(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groundCmd)
}

func printGrounding(w io.Writer) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorHelp))

	fmt.Fprintln(w, title.Render("  🌿 5-4-3-2-1 Grounding"))
	for _, step := range domain.GroundingSteps {
		fmt.Fprintf(w, "    %s\n", step.Title)
		fmt.Fprintf(w, "      %s\n", dim.Render(step.Description))
	}
}
