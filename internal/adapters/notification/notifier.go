// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string) error
	beep   func() error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// Notify displays a desktop notification if enabled, beeping as well
// when sound is on.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if err := n.notify(title, message); err != nil {
		return err
	}
	if n.cfg.Sound {
		return n.beep()
	}
	return nil
}

// NotifyExerciseComplete tells the user an exercise has finished.
func (n *Notifier) NotifyExerciseComplete(kind domain.ExerciseKind) error {
	return n.Notify("💜 "+kind.Label()+" complete", domain.CompletionMessage(kind))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
