package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
)

// saveConfig is swapped out in tests.
var saveConfig = config.Save

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), configJSON(app.config))
		}
		printConfig(cmd.OutOrStdout(), app.config)
		return nil
	},
}

var configNameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Set the name used in the greeting",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.config.User.Name = strings.TrimSpace(strings.Join(args, " "))
		if err := saveConfig(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Name set to %q\n", app.config.User.Name)
		return nil
	},
}

var configNotificationsCmd = &cobra.Command{
	Use:       "notifications <on|off|sound>",
	Short:     "Turn completion notifications on or off",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "sound"},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &app.config.Notifications
		switch strings.ToLower(args[0]) {
		case "on":
			n.Enabled, n.Sound = true, false
		case "sound":
			n.Enabled, n.Sound = true, true
		case "off":
			n.Enabled, n.Sound = false, false
		default:
			return fmt.Errorf("invalid value %q: use on, off or sound", args[0])
		}
		if err := saveConfig(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Notifications: %s\n", notificationStatus(app.config))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configNameCmd, configNotificationsCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func notificationStatus(cfg *config.Config) string {
	switch {
	case !cfg.Notifications.Enabled:
		return "off"
	case cfg.Notifications.Sound:
		return "on (with sound)"
	default:
		return "on"
	}
}

func printConfig(w io.Writer, cfg *config.Config) {
	name := cfg.User.Name
	if name == "" {
		name = "(not set)"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Current configuration:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Name:            %s\n", name)
	fmt.Fprintf(w, "    Breathing:       inhale %s · hold %s · exhale %s\n", cfg.Breathing.Inhale, cfg.Breathing.Hold, cfg.Breathing.Exhale)
	fmt.Fprintf(w, "    SOS:             inhale %ds · exhale %ds for %ds (fixed)\n",
		domain.SOSCycle[0].Seconds, domain.SOSCycle[1].Seconds, domain.SOSSeconds)
	fmt.Fprintf(w, "    Session lengths: %v seconds\n", cfg.Lengths())
	fmt.Fprintf(w, "    Defaults:        breathing %s · brain dump %s · body reset %s\n",
		cfg.Breathing.DefaultLength, cfg.BrainDump.DefaultLength, cfg.BodyReset.DefaultLength)
	fmt.Fprintf(w, "    Notifications:   %s\n", notificationStatus(cfg))
	fmt.Fprintln(w)
	fmt.Fprintln(w, `  Edit the file shown by "mindminute config path" for everything else.`)
	fmt.Fprintln(w)
}

func configJSON(cfg *config.Config) map[string]any {
	return map[string]any{
		"name":            cfg.User.Name,
		"breathing":       cfg.Breathing.Sequence(),
		"sos":             domain.SOSCycle,
		"sos_seconds":     domain.SOSSeconds,
		"session_lengths": cfg.Lengths(),
		"notifications":   notificationStatus(cfg),
	}
}
