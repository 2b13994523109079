package extraction

import (
	"regexp"
	"strings"
)

const (
	monthPattern   = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	presentPattern = `(?:Present|Current|Now|Ongoing|Today)`
	rangeSeparator = `\s*(?:-|–|—|to|until)\s*`
)

// periodPatterns are the ordered date-range alternatives. The first match
// wins, so the more specific month+year form comes before the bare-year
// form; parenthesized variants fall out of the optional parens.
var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(?(` + monthPattern + `\.?\s+\d{4})` + rangeSeparator + `(` + monthPattern + `\.?\s+\d{4}|` + presentPattern + `)\)?`),
	regexp.MustCompile(`(?i)\(?\b(\d{4})` + rangeSeparator + `(\d{4}|` + presentPattern + `)\b\)?`),
}

var presentRe = regexp.MustCompile(`(?i)^` + presentPattern + `$`)

// extractPeriod finds a date range in line and strips it. The end label is
// empty for ongoing roles ("Present" and friends). ok is false when no
// period pattern matches; the line is returned unchanged in that case.
func extractPeriod(line string) (start, end, rest string, ok bool) {
	for _, re := range periodPatterns {
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		m := re.FindStringSubmatch(line)
		start = strings.TrimSpace(m[1])
		if endRaw := strings.TrimSpace(m[2]); !presentRe.MatchString(endRaw) {
			end = endRaw
		}
		rest = strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
		rest = strings.Trim(rest, " \t-–—|,()")
		return start, end, rest, true
	}
	return "", "", line, false
}

// hasPeriod reports whether line contains a recognizable date range
func hasPeriod(line string) bool {
	for _, re := range periodPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
