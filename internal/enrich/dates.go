package enrich

import (
	"strings"
	"time"
)

// dateLayouts are the formats catalog date strings arrive in.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// parseDate parses a catalog date string. The second return value is false
// for empty or unparsable input: date-driven bonuses fail closed rather than
// guessing (callers treat "could not parse" as "rule not applicable").
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sameOrAfterDay reports whether t falls on day d or later, comparing UTC
// calendar days.
func sameOrAfterDay(t, d time.Time) bool {
	return !truncateToDay(t).Before(truncateToDay(d))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
