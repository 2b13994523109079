// Package matching decides, for each extracted requirement, whether the
// approved claim set satisfies it. Verdicts come with a citation naming the
// claim that supplied the evidence, so a reviewer can trace every "met"
// back to a line of career history.
package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

const (
	// relevanceRatio is the weighted-token overlap floor for a claim to
	// count toward an experience requirement at all.
	relevanceRatio = 0.4

	// partialYearsFraction marks an experience requirement Partial when a
	// relevant claim's tenure covers at least this share of the years
	// asked for.
	partialYearsFraction = 0.6
)

// MatchRequirements fills each requirement's Match and Evidence fields from
// the usable claims: active and included only. The input slice is not
// mutated; a new slice of updated copies is returned in the same order.
func MatchRequirements(reqs []types.Requirement, claims []types.Claim) []types.Requirement {
	usable := make([]types.Claim, 0, len(claims))
	for _, c := range claims {
		if c.Status == types.StatusActive && c.Included {
			usable = append(usable, c)
		}
	}

	now := time.Now()
	out := make([]types.Requirement, len(reqs))
	for i, req := range reqs {
		switch req.Type {
		case types.ReqTool:
			req.Match, req.Evidence = matchTool(&req, usable)
		case types.ReqSkill:
			req.Match, req.Evidence = matchSkill(&req, usable)
		case types.ReqExperience:
			req.Match, req.Evidence = matchExperience(&req, usable, now)
		default:
			// education and certification claims are not extracted from
			// career history, so these stay unverified
			req.Match = types.MatchMissing
		}
		out[i] = req
	}
	return out
}

// matchTool looks for the tool in each claim's tool list, then falls back
// to a word-boundary scan of the claim text.
func matchTool(req *types.Requirement, claims []types.Claim) (string, string) {
	for i := range claims {
		for _, tool := range claims[i].Tools {
			if strings.EqualFold(tool, req.Description) {
				return types.MatchMet, claims[i].Citation()
			}
		}
	}
	for i := range claims {
		if textutil.ContainsWord(claims[i].CombinedText(), req.Description) {
			return types.MatchMet, claims[i].Citation()
		}
	}
	return types.MatchMissing, ""
}

// matchSkill looks for the skill phrase in each claim's skill list, role,
// or evidence text.
func matchSkill(req *types.Requirement, claims []types.Claim) (string, string) {
	phrase := strings.ToLower(req.Description)
	for i := range claims {
		for _, skill := range claims[i].Skills {
			if strings.EqualFold(skill, req.Description) {
				return types.MatchMet, claims[i].Citation()
			}
		}
		if strings.Contains(strings.ToLower(claims[i].CombinedText()), phrase) {
			return types.MatchMet, claims[i].Citation()
		}
	}
	return types.MatchMissing, ""
}

// matchExperience judges each relevant claim against its own tenure. Met
// needs a single relevant claim whose duration covers the full ask; a
// relevant claim covering most of it earns a Partial. Tenure is never
// summed across claims for Met; the cross-claim total only feeds the
// aggregate-Partial fallback.
func matchExperience(req *types.Requirement, claims []types.Claim, now time.Time) (string, string) {
	reqTokens := textutil.TokenSet(req.Description)

	var totalYears, bestYears int
	var best *types.Claim
	for i := range claims {
		years := claimYears(claims[i].StartDate, claims[i].EndDate, now)
		totalYears += years
		if relevance(reqTokens, &claims[i]) < relevanceRatio {
			continue
		}
		if best == nil || years > bestYears {
			best = &claims[i]
			bestYears = years
		}
	}

	switch {
	case best != nil && bestYears >= req.YearsNeeded:
		return types.MatchMet, fmt.Sprintf("%d years, %s", bestYears, best.Citation())
	case best != nil && float64(bestYears) >= partialYearsFraction*float64(req.YearsNeeded):
		return types.MatchPartial, fmt.Sprintf("%d of %d years, %s", bestYears, req.YearsNeeded, best.Citation())
	case totalYears >= req.YearsNeeded && len(claims) > 0:
		return types.MatchPartial, fmt.Sprintf("%d years across %d roles, relevance unclear", totalYears, len(claims))
	default:
		return types.MatchMissing, ""
	}
}

// relevance is the weighted overlap between requirement tokens and claim
// text. Longer tokens carry more weight since short ones are generic.
func relevance(reqTokens map[string]bool, claim *types.Claim) float64 {
	if len(reqTokens) == 0 {
		return 0
	}
	claimTokens := textutil.TokenSet(claim.CombinedText())
	for _, tool := range claim.Tools {
		for t := range textutil.TokenSet(tool) {
			claimTokens[t] = true
		}
	}
	var total, matched float64
	for token := range reqTokens {
		w := tokenWeight(token)
		total += w
		if claimTokens[token] {
			matched += w
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

func tokenWeight(token string) float64 {
	w := len(token) - 3
	if w < 1 {
		w = 1
	}
	return float64(w)
}
