package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/xvierd/mindminute/internal/domain"
)

// bestMatch returns the index of the closest fuzzy match of query in
// candidates, or -1.
func bestMatch(query string, candidates []string) int {
	matches := fuzzy.Find(strings.ToLower(query), candidates)
	if len(matches) == 0 {
		return -1
	}
	return matches[0].Index
}

// resolveMood accepts a mood label, its bare word or an abbreviation
// such as "stress" or "ovr".
func resolveMood(s string) (domain.Mood, error) {
	if m, err := domain.ParseMood(s); err == nil {
		return m, nil
	}

	words := make([]string, len(domain.AllMoods))
	for i, m := range domain.AllMoods {
		words[i] = strings.ToLower(m.Word())
	}
	if i := bestMatch(s, words); i >= 0 {
		return domain.AllMoods[i], nil
	}
	return "", fmt.Errorf("%w: %q (try good, okay, stressed, overwhelmed or tired)", domain.ErrUnknownMood, s)
}

// resolveNeed maps s onto one of the offered needs when it is an
// abbreviation of one. Anything else is kept as free text.
func resolveNeed(s string) domain.Need {
	s = strings.TrimSpace(s)
	if n, err := domain.ParseNeed(s); err == nil {
		return n
	}

	needs := make([]string, len(domain.AllNeeds))
	for i, n := range domain.AllNeeds {
		needs[i] = strings.ToLower(string(n))
	}
	if i := bestMatch(s, needs); i >= 0 {
		return domain.AllNeeds[i]
	}
	return domain.Need(s)
}

// resolveScreen accepts a screen identifier, label or abbreviation.
func resolveScreen(s string) (domain.Screen, error) {
	if screen, err := domain.ParseScreen(s); err == nil {
		return screen, nil
	}

	names := make([]string, len(domain.AllScreens))
	for i, screen := range domain.AllScreens {
		names[i] = string(screen)
	}
	if i := bestMatch(strings.ReplaceAll(s, " ", "_"), names); i >= 0 {
		return domain.AllScreens[i], nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownScreen, s)
}
