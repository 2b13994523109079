package extraction

import (
	"regexp"
	"strings"

	"github.com/dmartin/fitscore/internal/textutil"
)

// roleKeywords mark a string as a plausible role title
var roleKeywords = []string{
	"director", "head", "vp", "vice president", "chief", "manager", "lead",
	"officer", "president", "principal", "engineer", "developer", "analyst",
	"designer", "specialist", "coordinator", "consultant", "architect",
	"strategist", "marketer", "scientist", "administrator", "associate",
	"intern", "founder",
}

// companySuffixes mark a string as a plausible company name
var companySuffixes = []string{
	"inc", "llc", "corp", "corporation", "ltd", "limited", "co", "gmbh",
	"plc", "group", "labs", "technologies", "systems", "software", "media",
	"agency", "partners", "ventures", "holdings", "studio", "studios",
	"company",
}

var (
	roleLabelRe    = regexp.MustCompile(`(?i)^(?:role|title|position)\s*[:\-]\s*(.+)$`)
	companyLabelRe = regexp.MustCompile(`(?i)^(?:company|employer|organization|organisation)\s*[:\-]\s*(.+)$`)
)

// looksLikeRole reports whether s reads like a role title
func looksLikeRole(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, kw := range roleKeywords {
		if textutil.ContainsWord(s, kw) {
			return true
		}
	}
	return false
}

// looksLikeCompany reports whether s reads like a company name
func looksLikeCompany(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, suffix := range companySuffixes {
		if textutil.ContainsWord(s, suffix) {
			return true
		}
	}
	return false
}

// looksLikeSkillList rejects role candidates that are really comma lists
// ("SEO, SEM, Analytics") rather than titles.
func looksLikeSkillList(s string) bool {
	return strings.Count(s, ",") >= 2
}

// containsAtPair reports whether s has an "X at Y" / "X @ Y" shape
func containsAtPair(s string) bool {
	role, company := splitAtPair(s)
	return role != "" && company != ""
}

// splitAtPair splits "X at Y" / "X @ Y" into its halves when the left half
// looks like a role. Returns empty strings when the shape is absent.
func splitAtPair(s string) (role, company string) {
	for _, sep := range []string{" at ", " @ "} {
		idx := indexFold(s, sep)
		if idx <= 0 {
			continue
		}
		left := strings.TrimSpace(s[:idx])
		right := strings.TrimSpace(s[idx+len(sep):])
		if left == "" || right == "" {
			continue
		}
		if looksLikeRole(left) && !looksLikeSkillList(left) {
			return left, right
		}
	}
	return "", ""
}

// headerSeparators are tried in order when a header line holds a
// delimiter-joined pair.
var headerSeparators = []string{" | ", " – ", " — ", " - ", ", "}

// inferRoleCompany derives (role, company) from up to three header lines by
// trying a prioritized list of strategies with early return:
//
//  1. explicit Role:/Company: labels
//  2. an "X at Y" / "X @ Y" line
//  3. a delimiter-joined pair where exactly one side looks like a role
//  4. one role-looking line paired with a separate non-role line
//
// Ambiguous delimiter pairs (both or neither side role-like) are rejected
// rather than guessed.
func inferRoleCompany(headerLines []string) (role, company string) {
	// Strategy 1: explicit labels
	for _, line := range headerLines {
		if m := roleLabelRe.FindStringSubmatch(line); m != nil && role == "" {
			role = strings.TrimSpace(m[1])
		}
		if m := companyLabelRe.FindStringSubmatch(line); m != nil && company == "" {
			company = strings.TrimSpace(m[1])
		}
	}
	if role != "" && company != "" {
		return role, company
	}

	// Strategy 2: "X at Y"
	for _, line := range headerLines {
		if r, c := splitAtPair(line); r != "" {
			return r, c
		}
	}

	// Strategy 3: delimiter pairs
	for _, line := range headerLines {
		if r, c, ok := splitDelimited(line); ok {
			return r, c
		}
	}

	// Strategy 4: role line + separate company line
	role, company = "", ""
	for _, line := range headerLines {
		trimmed := strings.TrimSpace(line)
		if role == "" && looksLikeRole(trimmed) && !looksLikeSkillList(trimmed) {
			role = trimmed
			continue
		}
		if company == "" && !looksLikeRole(trimmed) {
			company = trimmed
		}
	}
	if role != "" && company != "" {
		return role, company
	}
	return "", ""
}

// splitDelimited resolves a "Left | Right" style header line. The side that
// is unambiguously a role wins; pairs where both or neither side look like
// a role are rejected.
func splitDelimited(line string) (role, company string, ok bool) {
	for _, sep := range headerSeparators {
		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			continue
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left == "" || right == "" {
			continue
		}
		leftRole := looksLikeRole(left) && !looksLikeSkillList(left)
		rightRole := looksLikeRole(right) && !looksLikeSkillList(right)
		switch {
		case leftRole && !rightRole:
			return left, right, true
		case rightRole && !leftRole:
			return right, left, true
		}
		// Both or neither: ambiguous, try the next separator
	}
	return "", "", false
}

// indexFold returns the index of the first case-insensitive occurrence of
// sep in s, or -1.
func indexFold(s, sep string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sep))
}
