// Package config provides configuration management for MindMinute.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/mindminute/internal/domain"
)

// Config holds all configuration for the MindMinute application.
type Config struct {
	User           UserConfig         `mapstructure:"user"`
	SessionLengths []Duration         `mapstructure:"session_lengths"`
	Breathing      BreathingConfig    `mapstructure:"breathing"`
	BodyReset      TimerConfig        `mapstructure:"body_reset"`
	BrainDump      TimerConfig        `mapstructure:"brain_dump"`
	Notifications  NotificationConfig `mapstructure:"notifications"`
	Log            LogConfig          `mapstructure:"log"`
	Theme          ThemeConfig        `mapstructure:"theme"`
}

// UserConfig holds the defaults shown on the home screen.
type UserConfig struct {
	Name string `mapstructure:"name"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle        string `mapstructure:"color_title"`
	ColorAccent       string `mapstructure:"color_accent"`
	ColorBox          string `mapstructure:"color_box"`
	ColorHelp         string `mapstructure:"color_help"`
	ColorSOS          string `mapstructure:"color_sos"`
	ColorSuccess      string `mapstructure:"color_success"`
	CalmGradientStart string `mapstructure:"calm_gradient_start"`
	CalmGradientEnd   string `mapstructure:"calm_gradient_end"`
	SOSGradientStart  string `mapstructure:"sos_gradient_start"`
	SOSGradientEnd    string `mapstructure:"sos_gradient_end"`
	IconApp           string `mapstructure:"icon_app"`
	IconStreak        string `mapstructure:"icon_streak"`
	IconPlan          string `mapstructure:"icon_plan"`
	IconAffirmation   string `mapstructure:"icon_affirmation"`
}

// DefaultThemeConfig returns the default pastel theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:        "#4B3FA3",
		ColorAccent:       "#7B6DF1",
		ColorBox:          "#E6E0FF",
		ColorHelp:         "#9A8CFF",
		ColorSOS:          "#FF9AA9",
		ColorSuccess:      "#8FD3B6",
		CalmGradientStart: "#CFC9FF",
		CalmGradientEnd:   "#7B6DF1",
		SOSGradientStart:  "#FFB3C1",
		SOSGradientEnd:    "#FF9AA9",
		IconApp:           "🧘",
		IconStreak:        "🔥",
		IconPlan:          "🌈",
		IconAffirmation:   "💜",
	}
}

// BreathingConfig holds the 4-4-6 pacing and the default session length.
type BreathingConfig struct {
	Inhale        Duration `mapstructure:"inhale"`
	Hold          Duration `mapstructure:"hold"`
	Exhale        Duration `mapstructure:"exhale"`
	DefaultLength Duration `mapstructure:"default_length"`
}

// Sequence converts the pacing into a phase sequence.
func (c BreathingConfig) Sequence() domain.PhaseSequence {
	return domain.PhaseSequence{
		{Name: "Inhale", Seconds: c.Inhale.Seconds()},
		{Name: "Hold", Seconds: c.Hold.Seconds()},
		{Name: "Exhale", Seconds: c.Exhale.Seconds()},
	}
}

// TimerConfig holds settings for exercises without phase cues.
type TimerConfig struct {
	DefaultLength Duration `mapstructure:"default_length"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Seconds returns the duration in whole seconds.
func (d Duration) Seconds() int {
	return int(time.Duration(d) / time.Second)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SessionLengths: []Duration{
			Duration(30 * time.Second),
			Duration(60 * time.Second),
			Duration(90 * time.Second),
		},
		Breathing: BreathingConfig{
			Inhale:        Duration(4 * time.Second),
			Hold:          Duration(4 * time.Second),
			Exhale:        Duration(6 * time.Second),
			DefaultLength: Duration(60 * time.Second),
		},
		BodyReset: TimerConfig{DefaultLength: Duration(60 * time.Second)},
		BrainDump: TimerConfig{DefaultLength: Duration(60 * time.Second)},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating it with
// defaults when it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix("MINDMINUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that would produce an invalid exercise.
func (c *Config) Validate() error {
	if err := c.Breathing.Sequence().Validate(); err != nil {
		return fmt.Errorf("breathing: %w", err)
	}
	defaults := []struct {
		key string
		d   Duration
	}{
		{"breathing.default_length", c.Breathing.DefaultLength},
		{"body_reset.default_length", c.BodyReset.DefaultLength},
		{"brain_dump.default_length", c.BrainDump.DefaultLength},
	}
	for _, def := range defaults {
		if err := validLength(def.d); err != nil {
			return fmt.Errorf("%s: %w", def.key, err)
		}
	}
	if len(c.SessionLengths) == 0 {
		return fmt.Errorf("session_lengths: %w", domain.ErrInvalidDuration)
	}
	for _, l := range c.SessionLengths {
		if err := validLength(l); err != nil {
			return fmt.Errorf("session_lengths: %w", err)
		}
	}
	return nil
}

// validLength accepts whole-second lengths between one second and
// domain.MaxExerciseSeconds.
func validLength(d Duration) error {
	secs := d.Seconds()
	if secs <= 0 || secs > domain.MaxExerciseSeconds {
		return fmt.Errorf("%w: %s must be between 1s and %ds", domain.ErrInvalidDuration, d, domain.MaxExerciseSeconds)
	}
	return nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	lengths := make([]string, len(cfg.SessionLengths))
	for i, l := range cfg.SessionLengths {
		lengths[i] = l.String()
	}

	v.Set("user.name", cfg.User.Name)
	v.Set("session_lengths", lengths)
	v.Set("breathing.inhale", cfg.Breathing.Inhale.String())
	v.Set("breathing.hold", cfg.Breathing.Hold.String())
	v.Set("breathing.exhale", cfg.Breathing.Exhale.String())
	v.Set("breathing.default_length", cfg.Breathing.DefaultLength.String())
	v.Set("body_reset.default_length", cfg.BodyReset.DefaultLength.String())
	v.Set("brain_dump.default_length", cfg.BrainDump.DefaultLength.String())
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.json", cfg.Log.JSON)
	v.Set("theme", themeMap(cfg.Theme))

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mindminute", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("user.name", "")
	v.SetDefault("session_lengths", []string{"30s", "1m0s", "1m30s"})
	v.SetDefault("breathing.inhale", "4s")
	v.SetDefault("breathing.hold", "4s")
	v.SetDefault("breathing.exhale", "6s")
	v.SetDefault("breathing.default_length", "1m0s")
	v.SetDefault("body_reset.default_length", "1m0s")
	v.SetDefault("brain_dump.default_length", "1m0s")
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.sound", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	for key, value := range themeMap(DefaultThemeConfig()) {
		v.SetDefault("theme."+key, value)
	}
}

func themeMap(t ThemeConfig) map[string]string {
	return map[string]string{
		"color_title":         t.ColorTitle,
		"color_accent":        t.ColorAccent,
		"color_box":           t.ColorBox,
		"color_help":          t.ColorHelp,
		"color_sos":           t.ColorSOS,
		"color_success":       t.ColorSuccess,
		"calm_gradient_start": t.CalmGradientStart,
		"calm_gradient_end":   t.CalmGradientEnd,
		"sos_gradient_start":  t.SOSGradientStart,
		"sos_gradient_end":    t.SOSGradientEnd,
		"icon_app":            t.IconApp,
		"icon_streak":         t.IconStreak,
		"icon_plan":           t.IconPlan,
		"icon_affirmation":    t.IconAffirmation,
	}
}

// Lengths returns the selectable session lengths in seconds.
func (c *Config) Lengths() []int {
	out := make([]int, 0, len(c.SessionLengths))
	for _, l := range c.SessionLengths {
		out = append(out, l.Seconds())
	}
	return out
}
