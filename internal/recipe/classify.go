package recipe

import (
	"regexp"
	"strings"
)

// criticalKeywords flag a step as needing continuous attention. Matching is
// on the lowercased instruction text.
var criticalKeywords = []string{
	"don't",
	"do not",
	"must",
	"constantly",
	"immediately",
	"watch closely",
	"careful",
	"never leave",
}

// IsCritical reports whether a step requires continuous attention, based on
// a fixed keyword set associated with hazards or required vigilance.
func IsCritical(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Reminder is a one-shot safety or pacing hint derived from a step's text.
type Reminder struct {
	Category string
	Message  string
}

// reminderRule maps a text pattern to a reminder. Rules are evaluated in
// order; the first match wins.
type reminderRule struct {
	category string
	pattern  *regexp.Regexp
	message  string
}

var reminderRules = []reminderRule{
	{
		category: "preheat",
		pattern:  regexp.MustCompile(`(?i)\bpreheat`),
		message:  "Start preheating now so the oven is ready when you need it.",
	},
	{
		category: "rest",
		pattern:  regexp.MustCompile(`(?i)\b(rest|resting|cool|cooling|chill|chilling)\b`),
		message:  "Resting time matters — set everything aside and don't rush it.",
	},
	{
		category: "stir",
		pattern:  regexp.MustCompile(`(?i)\b(stir|stirring|whisk|whisking)\b.*\bconstantly\b|\bconstantly\b.*\b(stir|stirring|whisk|whisking)\b`),
		message:  "This needs continuous stirring — stay at the stove.",
	},
	{
		category: "boil",
		pattern:  regexp.MustCompile(`(?i)\b(boil|boiling|simmer|simmering)\b`),
		message:  "Keep an eye on the pot so it doesn't boil over.",
	},
}

// ReminderFor derives an optional one-shot reminder from a step's text.
// An ordered set of pattern rules is applied (preheat, resting/cooling,
// continuous stirring, boiling/simmering) with a final fallback when the
// step contains a parseable duration. At most one reminder is returned.
func ReminderFor(text string) (Reminder, bool) {
	for _, rule := range reminderRules {
		if rule.pattern.MatchString(text) {
			return Reminder{Category: rule.category, Message: rule.message}, true
		}
	}

	if secs, ok := ParseDuration(text); ok {
		return Reminder{
			Category: "timer",
			Message:  "This step is timed (" + FormatClock(secs) + ") — start the timer when you begin.",
		}, true
	}

	return Reminder{}, false
}

// CriticalSteps returns the set of step indices classified as critical,
// computed once at session creation.
func CriticalSteps(steps []string) map[int]bool {
	critical := make(map[int]bool)
	for i, step := range steps {
		if IsCritical(step) {
			critical[i] = true
		}
	}
	return critical
}
