package extraction

import (
	"regexp"
	"strings"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/textutil"
)

// outcomeVerbs is the fixed action-verb list that, combined with a numeric
// signal, classifies a line as an outcome rather than a responsibility.
var outcomeVerbs = []string{
	"increased", "grew", "reduced", "decreased", "improved", "drove",
	"generated", "boosted", "cut", "scaled", "delivered", "doubled",
	"tripled", "expanded", "accelerated", "exceeded", "raised", "lifted",
}

// narrativeVerbs mark a non-bullet line as narrative evidence rather than a
// header candidate.
var narrativeVerbs = []string{
	"led", "managed", "built", "worked", "responsible", "developed",
	"created", "owned", "partnered", "drove", "oversaw", "spearheaded",
	"launched", "designed", "ran", "grew",
}

const narrativeLengthThreshold = 90

// numericSignalRe matches percentages, currency amounts, multipliers, and
// large comma-grouped or k/m-suffixed figures.
var numericSignalRe = regexp.MustCompile(
	`(?i)(\d+(?:\.\d+)?\s*%|\$\s?\d[\d,.]*\s*(?:k|m|mm|b)?\b|\b\d+(?:\.\d+)?x\b|\b\d{1,3}(?:,\d{3})+\b|\b\d+(?:\.\d+)?\s?(?:k|m|mm)\b)`,
)

// outcomeMetric classifies a line as an outcome. It returns the normalized
// numeric token as the metric label when the line contains both an action
// verb from the fixed list and a numeric signal.
func outcomeMetric(line string) (metric string, ok bool) {
	hasVerb := false
	for _, verb := range outcomeVerbs {
		if textutil.ContainsWord(line, verb) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		return "", false
	}
	m := numericSignalRe.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.ReplaceAll(textutil.NormalizeSpace(m), "$ ", "$"), true
}

// isNarrative reports whether a non-bullet line is narrative evidence
// rather than a header candidate: long, or opening with a first-person
// action verb.
func isNarrative(line string) bool {
	if len(line) > narrativeLengthThreshold {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if strings.HasPrefix(lower, "i ") {
		return true
	}
	first := lower
	if idx := strings.IndexByte(lower, ' '); idx > 0 {
		first = lower[:idx]
	}
	for _, verb := range narrativeVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

// salesFunnelContext phrases suppress "SQL" tool matches: in pipeline
// copy, SQL almost always means sales-qualified lead.
var salesFunnelContext = []string{
	"qualified lead", "qualified leads", "lead qualification",
	"sales funnel", "sales qualified", "marketing qualified", "mql",
}

// analyticsContext phrases re-enable the SQL tool match even inside
// funnel copy.
var analyticsContext = []string{
	"query", "queries", "database", "data warehouse", "analytics",
	"reporting", "dashboard", "dashboards",
}

// suppressSQLMatch reports whether an "SQL" hit on this line should be
// discarded as a sales-funnel acronym.
func suppressSQLMatch(line string) bool {
	funnel := false
	for _, phrase := range salesFunnelContext {
		if textutil.ContainsWord(line, phrase) {
			funnel = true
			break
		}
	}
	if !funnel {
		return false
	}
	for _, phrase := range analyticsContext {
		if textutil.ContainsWord(line, phrase) {
			return false
		}
	}
	return true
}

// detectTools appends the canonical names of lexicon tools found in line to
// seen, preserving first-seen order in the returned slice.
func detectTools(line string, lex *lexicon.Lexicon, seen map[string]bool, ordered []string) []string {
	for _, tool := range lex.Tools {
		if seen[tool.Name] {
			continue
		}
		for _, pattern := range tool.Patterns {
			if !textutil.ContainsWord(line, pattern) {
				continue
			}
			if tool.Name == "SQL" && suppressSQLMatch(line) {
				continue
			}
			seen[tool.Name] = true
			ordered = append(ordered, tool.Name)
			break
		}
	}
	return ordered
}

// detectSkills appends lexicon skill phrases found in line to seen, up to
// the per-claim cap.
func detectSkills(line string, lex *lexicon.Lexicon, seen map[string]bool, ordered []string, limit int) []string {
	for _, skill := range lex.Skills {
		if len(ordered) >= limit {
			return ordered
		}
		if seen[skill.Name] {
			continue
		}
		for _, pattern := range skill.Patterns {
			if textutil.ContainsWord(line, pattern) {
				seen[skill.Name] = true
				ordered = append(ordered, skill.Name)
				break
			}
		}
	}
	return ordered
}
