package matching

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// parseDate resolves a claim date string to the first day of its month.
// Bare years resolve to January. ok is false for unparsable input.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return time.Time{}, false
	}
	yearStr := yearRe.FindString(s)
	if yearStr == "" {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(yearStr)
	month := time.January
	for _, field := range strings.Fields(s) {
		if m, ok := months[strings.Trim(field, ".,")]; ok {
			month = m
			break
		}
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// claimYears returns the whole years a claim spans. An empty end date is an
// ongoing position measured to now. Unparsable dates contribute zero rather
// than failing the match.
func claimYears(start, end string, now time.Time) int {
	from, ok := parseDate(start)
	if !ok {
		return 0
	}
	to := now
	if end != "" && !strings.EqualFold(strings.TrimSpace(end), "present") {
		parsed, ok := parseDate(end)
		if !ok {
			return 0
		}
		to = parsed
	}
	if to.Before(from) {
		return 0
	}
	years := int(to.Sub(from).Hours() / (24 * 365.25))
	return years
}
