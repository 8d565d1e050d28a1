package domain

import (
	"fmt"
	"strings"
	"time"
)

// PartOfDay names the time of day for a greeting.
func PartOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// Greeting returns the home-screen headline for name at t. An empty name
// produces the invitation to enter one.
func Greeting(name string, t time.Time) (headline, subline string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "👋 Hi! Enter your name to begin 🌿", ""
	}
	return fmt.Sprintf("✨ Hey %s, happy %s!", name, t.Weekday()),
		fmt.Sprintf("Hope you're having a gentle %s 🌿", PartOfDay(t))
}
