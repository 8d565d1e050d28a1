package domain

import (
	"strings"
	"testing"
	"time"
)

func TestPartOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{23, "evening"},
	}
	for _, tt := range tests {
		at := time.Date(2026, 3, 10, tt.hour, 0, 0, 0, time.UTC)
		if got := PartOfDay(at); got != tt.want {
			t.Errorf("PartOfDay(%02d:00) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestGreeting(t *testing.T) {
	tuesdayEvening := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)

	head, sub := Greeting("Ana", tuesdayEvening)
	if !strings.Contains(head, "Hey Ana, happy Tuesday!") {
		t.Errorf("headline = %q", head)
	}
	if !strings.Contains(sub, "gentle evening") {
		t.Errorf("subline = %q", sub)
	}

	head, sub = Greeting("   ", tuesdayEvening)
	if !strings.Contains(head, "Enter your name") || sub != "" {
		t.Errorf("blank name greeting = %q / %q", head, sub)
	}
}
