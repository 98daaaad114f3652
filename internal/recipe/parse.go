package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches the first number (integer or decimal) immediately
// followed by a time unit token. Unit matching is case-insensitive and
// longest-token-first so "minutes" is not consumed as "min" plus trailing
// text.
var durationPattern = regexp.MustCompile(
	`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?|seconds?|secs?)\b`)

// ParseDuration extracts a single candidate duration in seconds from a
// step's free-text instruction. Only the first number+unit match is used;
// a step with multiple time mentions yields only the first duration.
// Returns ok=false when no duration is present.
func ParseDuration(text string) (seconds int, ok bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "h"):
		value *= 3600
	case strings.HasPrefix(unit, "m"):
		value *= 60
	}

	return int(math.Round(value)), true
}

// FormatClock renders a second count as a clock string: "h:mm:ss" when the
// duration reaches an hour, "m:ss" otherwise. Negative input clamps to 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
