package domain

import "strings"

// Need is the free-text statement of what the user wants right now.
type Need string

// The statements offered to the user. Any other text is accepted by
// Recommend and matched by keyword.
const (
	NeedCalm      Need = "I want to calm down"
	NeedThoughts  Need = "My thoughts are racing"
	NeedBody      Need = "My body feels tense"
	NeedLow       Need = "I feel kind of low / overwhelmed"
	NeedQuickRest Need = "I just want a quick reset"
)

// AllNeeds lists the offered statements in display order.
var AllNeeds = []Need{
	NeedCalm,
	NeedThoughts,
	NeedBody,
	NeedLow,
	NeedQuickRest,
}

// Mentions reports whether the need contains keyword, ignoring case.
func (n Need) Mentions(keyword string) bool {
	return strings.Contains(strings.ToLower(string(n)), strings.ToLower(keyword))
}

// ParseNeed returns the offered statement equal (ignoring case) to s.
func ParseNeed(s string) (Need, error) {
	s = strings.TrimSpace(s)
	for _, n := range AllNeeds {
		if strings.EqualFold(string(n), s) {
			return n, nil
		}
	}
	return "", ErrUnknownNeed
}
