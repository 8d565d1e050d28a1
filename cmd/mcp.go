package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server exposes mood check-ins, plans, streaks and exercise previews over stdio.
Stdout carries the protocol, so status messages go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), "🚀 Starting MCP server on stdio (Ctrl+C to stop)")

		server := mcp.NewServer(app.wellness, Version)
		if err := server.Start(setupSignalHandler()); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
