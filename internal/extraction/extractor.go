// Package extraction segments free-form career-history text into structured
// work-history claims. It is pure rule-based parsing: period patterns,
// header-inference strategies tried in order, and lexicon matching. Text
// that yields nothing identifiable produces an empty claim list, which is
// success, not an error.
package extraction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

// Confidence weights for presence flags, and the penalties for missing
// identity or evidence. The sum of all presence weights is 0.98.
const (
	weightRole          = 0.24
	weightCompany       = 0.18
	weightStartDate     = 0.10
	weightEndDate       = 0.03
	weightResponsibs    = 0.12
	weightTools         = 0.07
	weightSkills        = 0.06
	weightOutcomes      = 0.08
	weightMetricOutcome = 0.10

	penaltyMissingIdentity = 0.08
	penaltyMissingEvidence = 0.06

	confidenceFloor = 0.05
	confidenceCeil  = 0.99

	// Approval requires high confidence, full identity, and at least two
	// evidence items.
	approvalThreshold   = 0.9
	approvalMinEvidence = 2

	maxHeaderLines    = 3
	maxSkillsPerClaim = 8
)

// ExtractClaims segments text into experience blocks and returns the
// structured claims found in them. draft tags each claim with the import
// batch it came from. The input is expected to be newline-normalized
// (see ingestion.CleanText); stray bullet glyphs are tolerated.
func ExtractClaims(text, draft string, lex *lexicon.Lexicon) []types.Claim {
	if lex == nil {
		lex = lexicon.Default()
	}
	var claims []types.Claim
	for _, block := range splitBlocks(text) {
		for _, segment := range splitSegments(block) {
			if claim, ok := parseSegment(segment, draft, lex); ok {
				claims = append(claims, claim)
			}
		}
	}
	return mergeFragments(claims)
}

// parseSegment turns one segment's lines into a claim. ok is false when the
// segment fails the retention rules: it must have a role that reads like a
// role, a company distinct from it, and either a date or evidence.
func parseSegment(lines []string, draft string, lex *lexicon.Lexicon) (types.Claim, bool) {
	var headerLines, evidenceLines []string
	var start, end string

	for _, line := range lines {
		if isBulletLine(line) {
			if stripped := stripBullet(line); stripped != "" {
				evidenceLines = append(evidenceLines, stripped)
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if s, e, rest, ok := extractPeriod(trimmed); ok && start == "" {
			start, end = s, e
			trimmed = rest
		}
		if trimmed == "" {
			continue
		}
		if isNarrative(trimmed) {
			evidenceLines = append(evidenceLines, trimmed)
			continue
		}
		if len(headerLines) < maxHeaderLines {
			headerLines = append(headerLines, trimmed)
		} else {
			evidenceLines = append(evidenceLines, trimmed)
		}
	}

	role, company := inferRoleCompany(headerLines)

	claim := types.Claim{
		ID:        uuid.NewString(),
		Draft:     draft,
		Company:   company,
		Role:      role,
		StartDate: start,
		EndDate:   end,
		Status:    types.StatusActive,
		Included:  true,
	}
	collectEvidence(&claim, evidenceLines, lex)

	if !retainClaim(&claim) {
		return types.Claim{}, false
	}

	claim.Confidence = computeConfidence(&claim)
	claim.ReviewStatus = reviewStatus(&claim)
	return claim, true
}

// collectEvidence classifies evidence lines into outcomes and
// responsibilities and runs lexicon detection, deduplicating by normalized
// description throughout.
func collectEvidence(claim *types.Claim, lines []string, lex *lexicon.Lexicon) {
	seenDesc := make(map[string]bool)
	seenTools := make(map[string]bool)
	seenSkills := make(map[string]bool)

	for _, line := range lines {
		claim.Tools = detectTools(line, lex, seenTools, claim.Tools)
		claim.Skills = detectSkills(line, lex, seenSkills, claim.Skills, maxSkillsPerClaim)

		desc := textutil.NormalizeSpace(line)
		key := strings.ToLower(desc)
		if seenDesc[key] {
			continue
		}
		seenDesc[key] = true

		if metric, ok := outcomeMetric(line); ok {
			claim.Outcomes = append(claim.Outcomes, types.Outcome{
				Description: desc,
				Metric:      metric,
				IsNumeric:   true,
			})
		} else {
			claim.Responsibilities = append(claim.Responsibilities, desc)
		}
	}
}

// retainClaim applies the retention rules from the extraction pass
func retainClaim(claim *types.Claim) bool {
	if claim.Role == "" || claim.Company == "" {
		return false
	}
	if !looksLikeRole(claim.Role) || looksLikeSkillList(claim.Role) {
		return false
	}
	if strings.EqualFold(textutil.NormalizeSpace(claim.Role), textutil.NormalizeCompany(claim.Company)) {
		return false
	}
	return claim.HasDates() || claim.EvidenceCount() > 0
}

// computeConfidence sums the presence-flag weights, applies the missing
// identity/evidence penalties, and clamps to [0.05, 0.99].
func computeConfidence(claim *types.Claim) float64 {
	score := 0.0
	if claim.Role != "" {
		score += weightRole
	}
	if claim.Company != "" {
		score += weightCompany
	}
	if claim.StartDate != "" {
		score += weightStartDate
	}
	if claim.EndDate != "" {
		score += weightEndDate
	}
	if len(claim.Responsibilities) > 0 {
		score += weightResponsibs
	}
	if len(claim.Tools) > 0 {
		score += weightTools
	}
	if len(claim.Skills) > 0 {
		score += weightSkills
	}
	if len(claim.Outcomes) > 0 {
		score += weightOutcomes
	}
	for _, o := range claim.Outcomes {
		if o.IsNumeric {
			score += weightMetricOutcome
			break
		}
	}
	if claim.Role == "" || claim.Company == "" {
		score -= penaltyMissingIdentity
	}
	if claim.EvidenceCount() == 0 {
		score -= penaltyMissingEvidence
	}
	if score < confidenceFloor {
		return confidenceFloor
	}
	if score > confidenceCeil {
		return confidenceCeil
	}
	return score
}

// reviewStatus gates auto-approval: high confidence, both identity fields,
// and at least two evidence items.
func reviewStatus(claim *types.Claim) string {
	if claim.Confidence >= approvalThreshold &&
		claim.Role != "" && claim.Company != "" &&
		claim.EvidenceCount() >= approvalMinEvidence {
		return types.ReviewApproved
	}
	return types.ReviewNeeded
}
