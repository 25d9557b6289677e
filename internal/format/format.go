package format

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Overflow splits items into the first limit entries and the count of the rest.
// Example: Overflow([a b c d e], 3) => [a b c], 2
func Overflow(items []string, limit int) ([]string, int) {
	if limit < 0 {
		limit = 0
	}
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// YearRange renders a copyright span such as "2024" or "2024-2026".
// A zero or future since collapses to the current year.
func YearRange(since int, now time.Time) string {
	year := now.Year()
	if since <= 0 || since >= year {
		return strconv.Itoa(year)
	}
	return strconv.Itoa(since) + "-" + strconv.Itoa(year)
}

// Initials derives up to two upper-case initials from a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

// Percent clamps v into 0..100 for CSS widths.
func Percent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
