// Package requirements pulls structured requirements out of job-posting
// text. Priority is tracked as a running state: lines inherit the priority
// of the most recent section header ("Requirements", "Nice to have") unless
// the line itself carries an override phrase.
package requirements

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

const (
	// descriptionMaxLen caps requirement descriptions at a word boundary.
	descriptionMaxLen = 120

	// maxPlausibleYears rejects figures that are clearly not experience
	// requirements (phone numbers, years-as-dates).
	maxPlausibleYears = 30

	// experienceSimilarity and skillSimilarity are the Jaccard floors for
	// treating two extracted requirements as restatements of each other.
	experienceSimilarity = 0.6
	skillSimilarity      = 0.7

	// compatibleYearsGap is the largest difference in required years for
	// two experience requirements to still dedupe into one.
	compatibleYearsGap = 2
)

var (
	preferredHeaderRe = regexp.MustCompile(`(?i)^\s*(?:nice[\s-]to[\s-]have|preferred|bonus|plus(?:es)?)\b`)
	mustHeaderRe      = regexp.MustCompile(`(?i)^\s*(?:required|must[\s-]have|requirements|qualifications|what you(?:'ll)? need)\b`)

	preferredInlineRe = regexp.MustCompile(`(?i)\b(?:nice to have|preferred|a plus|bonus(?: points)? if|ideally)\b`)
	mustInlineRe      = regexp.MustCompile(`(?i)\b(?:must have|required|essential)\b`)

	// years patterns, tried in order from most to least specific
	yearsRangeRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})\+?\s*years?\b`)
	yearsPlusRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+\s*years?\b`)
	yearsAtLeast = regexp.MustCompile(`(?i)\b(?:minimum(?: of)?|at least)\s+(\d{1,2})\s*years?\b`)
	yearsPlainRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+years?\b`)

	educationRe     = regexp.MustCompile(`(?i)\b(?:bachelor|master|mba|phd|ba/bs|bs/ba|degree)\b`)
	certificationRe = regexp.MustCompile(`(?i)\b(?:certified|certification|certificate|pmp|cpa|cfa|six sigma)\b`)
)

// Extract parses a job description into a sorted requirement list. Output
// order is deterministic: every must requirement before every preferred,
// grouped by type within each priority tier.
func Extract(description string, lex *lexicon.Lexicon) []types.Requirement {
	if lex == nil {
		lex = lexicon.Default()
	}

	var reqs []types.Requirement
	priority := types.PriorityMust
	seenTools := make(map[string]bool)

	for _, raw := range strings.Split(description, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(raw, " \t•●◦▪‣⁃-–—*"))
		if line == "" {
			continue
		}
		switch {
		case preferredHeaderRe.MatchString(line):
			priority = types.PriorityPreferred
			continue
		case mustHeaderRe.MatchString(line):
			priority = types.PriorityMust
			continue
		}

		linePriority := priority
		if preferredInlineRe.MatchString(line) {
			linePriority = types.PriorityPreferred
		} else if mustInlineRe.MatchString(line) {
			linePriority = types.PriorityMust
		}

		reqs = appendExperience(reqs, line, linePriority)
		reqs = appendTools(reqs, line, linePriority, lex, seenTools)
		reqs = appendSkills(reqs, line, linePriority, lex)
		reqs = appendCredential(reqs, line, linePriority)
	}

	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].SortKey() < reqs[j].SortKey()
	})
	return reqs
}

// appendExperience extracts a years-of-experience requirement from the
// line, if present. The years pattern family alone drives extraction; no
// surrounding keyword is required. A newcomer that restates an existing
// experience requirement with a compatible year count is skipped, keeping
// the first occurrence unchanged.
func appendExperience(reqs []types.Requirement, line, priority string) []types.Requirement {
	years, ok := parseYears(line)
	if !ok {
		return reqs
	}
	req := types.Requirement{
		Type:        types.ReqExperience,
		Description: textutil.TruncateWords(line, descriptionMaxLen),
		YearsNeeded: years,
		Priority:    priority,
	}
	for i := range reqs {
		if reqs[i].Type != types.ReqExperience {
			continue
		}
		similar := textutil.Jaccard(reqs[i].Description, req.Description) >= experienceSimilarity
		gap := reqs[i].YearsNeeded - req.YearsNeeded
		if gap < 0 {
			gap = -gap
		}
		if similar && gap <= compatibleYearsGap {
			return reqs
		}
	}
	return append(reqs, req)
}

// parseYears tries the year patterns in specificity order. Ranges take the
// lower bound. Figures above the plausibility cap are rejected.
func parseYears(line string) (int, bool) {
	if m := yearsRangeRe.FindStringSubmatch(line); m != nil {
		return plausibleYears(m[1])
	}
	if m := yearsPlusRe.FindStringSubmatch(line); m != nil {
		return plausibleYears(m[1])
	}
	if m := yearsAtLeast.FindStringSubmatch(line); m != nil {
		return plausibleYears(m[1])
	}
	if m := yearsPlainRe.FindStringSubmatch(line); m != nil {
		return plausibleYears(m[1])
	}
	return 0, false
}

func plausibleYears(digits string) (int, bool) {
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	if n == 0 || n > maxPlausibleYears {
		return 0, false
	}
	return n, true
}

// appendTools scans the line against the tool catalog. A tool is recorded
// once per extraction, at the priority of its first mention.
func appendTools(reqs []types.Requirement, line, priority string, lex *lexicon.Lexicon, seen map[string]bool) []types.Requirement {
	for _, tool := range lex.Tools {
		if seen[tool.Name] {
			continue
		}
		for _, pattern := range tool.Patterns {
			if textutil.ContainsWord(line, pattern) {
				seen[tool.Name] = true
				reqs = append(reqs, types.Requirement{
					Type:        types.ReqTool,
					Description: tool.Name,
					Priority:    priority,
				})
				break
			}
		}
	}
	return reqs
}

// appendSkills scans the line against the skill catalog, collapsing
// near-duplicate skill requirements by token similarity.
func appendSkills(reqs []types.Requirement, line, priority string, lex *lexicon.Lexicon) []types.Requirement {
	for _, skill := range lex.Skills {
		found := false
		for _, pattern := range skill.Patterns {
			if textutil.ContainsWord(line, pattern) {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		duplicate := false
		for i := range reqs {
			if reqs[i].Type != types.ReqSkill {
				continue
			}
			if reqs[i].Description == skill.Name ||
				textutil.Jaccard(reqs[i].Description, skill.Name) >= skillSimilarity {
				if priority == types.PriorityMust {
					reqs[i].Priority = types.PriorityMust
				}
				duplicate = true
				break
			}
		}
		if !duplicate {
			reqs = append(reqs, types.Requirement{
				Type:        types.ReqSkill,
				Description: skill.Name,
				Priority:    priority,
			})
		}
	}
	return reqs
}

// appendCredential records education and certification requirements. Each
// kind is recorded at most once per line.
func appendCredential(reqs []types.Requirement, line, priority string) []types.Requirement {
	if educationRe.MatchString(line) && !hasType(reqs, types.ReqEducation, line) {
		reqs = append(reqs, types.Requirement{
			Type:        types.ReqEducation,
			Description: textutil.TruncateWords(line, descriptionMaxLen),
			Priority:    priority,
		})
	}
	if certificationRe.MatchString(line) && !hasType(reqs, types.ReqCertification, line) {
		reqs = append(reqs, types.Requirement{
			Type:        types.ReqCertification,
			Description: textutil.TruncateWords(line, descriptionMaxLen),
			Priority:    priority,
		})
	}
	return reqs
}

func hasType(reqs []types.Requirement, reqType, line string) bool {
	truncated := textutil.TruncateWords(line, descriptionMaxLen)
	for i := range reqs {
		if reqs[i].Type == reqType && reqs[i].Description == truncated {
			return true
		}
	}
	return false
}
