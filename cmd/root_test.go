package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/mindminute/internal/domain"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// resetFlags clears flag values left over from earlier executions and
// points the config file at a temporary home directory.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	jsonOutput, logFile, logLevel, nameFlag, openFlag = false, "", "", "", ""
	needFlag, exerciseSeconds, previewOnly = "", 0, false
	checkinCmd.Flags().Lookup("need").Changed = false
}

func TestRootCmd_BareExecution(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "mindminute" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "mindminute")
	}
}

func TestRootCmd_Help(t *testing.T) {
	resetFlags(t)
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	if !strings.Contains(stdout, "MindMinute") {
		t.Error("help output should mention MindMinute")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"json", "log-file", "log-level", "name"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
	if rootCmd.Flags().Lookup("open") == nil {
		t.Error("--open flag should be registered")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"breathe", "body", "dump", "sos", "ground", "checkin", "plan", "mcp", "config"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q should be registered", name)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	t.Run("empty session prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		printSummary(&buf, domain.JournalStats{}, 0)
		if buf.Len() != 0 {
			t.Errorf("printSummary() = %q, want empty", buf.String())
		}
	})

	t.Run("session with activity", func(t *testing.T) {
		var buf bytes.Buffer
		stats := domain.JournalStats{
			Checkins:           2,
			AverageScore:       3.5,
			ByMood:             map[domain.Mood]int{domain.MoodGood: 1, domain.MoodOkay: 1},
			ExercisesCompleted: 1,
			ExercisesCancelled: 1,
			Moods:              []domain.Mood{domain.MoodOkay, domain.MoodGood},
			Runs: []*domain.ExerciseRun{
				{Kind: domain.ExerciseBodyReset, Length: 30 * time.Second, Status: domain.RunStatusCancelled},
				{Kind: domain.ExerciseBreathing, Length: time.Minute, Status: domain.RunStatusCompleted},
			},
		}
		printSummary(&buf, stats, 1)

		out := buf.String()
		for _, want := range []string{
			"2 (average mood 3.5/4)",
			"Most often:     😊 Good",
			"Streak:         1 day",
			"Exercises done: 1 (1 stopped early)",
			"Mood journey:   😐 → 😊",
			"Breathing · 60s · completed",
			"Body Reset · 30s · cancelled",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q:\n%s", want, out)
			}
		}
	})
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		screen  domain.Screen
		seconds int
		want    string
	}{
		{domain.ScreenBreathing, 60, "breathe -s 60"},
		{domain.ScreenBrainDump, 0, "dump"},
		{domain.ScreenBodyReset, 30, "body -s 30"},
		{domain.ScreenGrounding, 0, "ground"},
		{domain.ScreenSOS, 30, "sos"},
		{domain.ScreenHome, 0, "--open home"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := commandFor(tt.screen, tt.seconds); got != tt.want {
				t.Errorf("commandFor(%s, %d) = %q, want %q", tt.screen, tt.seconds, got, tt.want)
			}
		})
	}
}
