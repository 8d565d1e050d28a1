package domain

import (
	"fmt"
	"strings"
)

// Screen identifies one navigable view of the application.
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenBreathing Screen = "breathing"
	ScreenBrainDump Screen = "brain_dump"
	ScreenBodyReset Screen = "body_reset"
	ScreenGrounding Screen = "grounding"
	ScreenSOS       Screen = "sos"
)

// AllScreens lists screens in sidebar order.
var AllScreens = []Screen{
	ScreenHome,
	ScreenBreathing,
	ScreenBrainDump,
	ScreenBodyReset,
	ScreenGrounding,
	ScreenSOS,
}

// IsValid reports whether s is a known screen.
func (s Screen) IsValid() bool {
	for _, known := range AllScreens {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable screen name.
func (s Screen) Label() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenBreathing:
		return "Breathing"
	case ScreenBrainDump:
		return "Brain Dump"
	case ScreenBodyReset:
		return "Body Reset"
	case ScreenGrounding:
		return "Grounding"
	case ScreenSOS:
		return "SOS"
	default:
		return "Unknown"
	}
}

// ParseScreen accepts an identifier ("brain_dump") or a label ("Brain Dump").
func ParseScreen(s string) (Screen, error) {
	s = strings.TrimSpace(s)
	for _, known := range AllScreens {
		if string(known) == s || strings.EqualFold(known.Label(), s) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
}
