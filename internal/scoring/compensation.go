package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary figures outside this band are assumed to be something other than
// annual compensation (hourly rates, phone numbers, funding amounts).
const (
	minPlausibleComp = 20_000
	maxPlausibleComp = 2_000_000
)

var compRangeRe = regexp.MustCompile(
	`(?i)\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\s*(k)?(?:\s*(?:-|–|—|to)\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\s*(k)?)?`)

// ParseCompRange scans text for a dollar salary range and returns the
// annual min and max. "$150,000 - $200,000" and "$150k-$200k" both parse;
// a lone figure yields min == max. ok is false when no plausible annual
// figure is present.
func ParseCompRange(text string) (min, max int, ok bool) {
	for _, m := range compRangeRe.FindAllStringSubmatch(text, -1) {
		lo, loOK := parseFigure(m[1], m[2] != "")
		if !loOK {
			continue
		}
		hi := lo
		if m[3] != "" {
			parsed, hiOK := parseFigure(m[3], m[4] != "")
			if !hiOK || parsed < lo {
				continue
			}
			hi = parsed
		}
		return lo, hi, true
	}
	return 0, 0, false
}

func parseFigure(digits string, thousands bool) (int, bool) {
	cleaned := strings.ReplaceAll(digits, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if thousands {
		f *= 1000
	}
	n := int(f)
	if n < minPlausibleComp || n > maxPlausibleComp {
		return 0, false
	}
	return n, true
}
