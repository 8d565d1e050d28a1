package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/xvierd/mindminute/internal/config"
)

// stubSave records saved configs instead of writing them.
func stubSave(t *testing.T) *[]config.Config {
	t.Helper()
	var saved []config.Config
	orig := saveConfig
	saveConfig = func(cfg *config.Config) error {
		saved = append(saved, *cfg)
		return nil
	}
	t.Cleanup(func() { saveConfig = orig })
	return &saved
}

func TestConfigCmd_JSON(t *testing.T) {
	resetFlags(t)
	stdout, _, err := executeCmd(rootCmd, "config", "--json", "--name", "Sam")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if out["name"] != "Sam" {
		t.Errorf("name = %v, want the --name override", out["name"])
	}
	if out["sos_seconds"] != float64(30) {
		t.Errorf("sos_seconds = %v", out["sos_seconds"])
	}
	if out["notifications"] != "on" {
		t.Errorf("notifications = %v", out["notifications"])
	}
}

func TestConfigCmd_Text(t *testing.T) {
	resetFlags(t)
	stdout, _, err := executeCmd(rootCmd, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"(not set)", "inhale 4s · hold 4s · exhale 6s", "[30 60 90] seconds"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigNameCmd(t *testing.T) {
	resetFlags(t)
	saved := stubSave(t)

	stdout, _, err := executeCmd(rootCmd, "config", "name", "Ana", "Lucia")
	if err != nil {
		t.Fatalf("config name failed: %v", err)
	}
	if len(*saved) != 1 || (*saved)[0].User.Name != "Ana Lucia" {
		t.Fatalf("saved = %+v", *saved)
	}
	if !strings.Contains(stdout, `"Ana Lucia"`) {
		t.Errorf("output = %q", stdout)
	}
}

func TestConfigNotificationsCmd(t *testing.T) {
	tests := []struct {
		arg     string
		enabled bool
		sound   bool
		status  string
	}{
		{"off", false, false, "off"},
		{"sound", true, true, "on (with sound)"},
		{"on", true, false, "on"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			resetFlags(t)
			saved := stubSave(t)

			stdout, _, err := executeCmd(rootCmd, "config", "notifications", tt.arg)
			if err != nil {
				t.Fatalf("config notifications failed: %v", err)
			}
			got := (*saved)[0].Notifications
			if got.Enabled != tt.enabled || got.Sound != tt.sound {
				t.Errorf("notifications = %+v", got)
			}
			if !strings.Contains(stdout, tt.status) {
				t.Errorf("output = %q, want %q", stdout, tt.status)
			}
		})
	}

	resetFlags(t)
	stubSave(t)
	if _, _, err := executeCmd(rootCmd, "config", "notifications", "loud"); err == nil {
		t.Error("invalid value should be rejected")
	}
}
