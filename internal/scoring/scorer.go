// Package scoring computes a deterministic 0-100 fit score for a job
// posting against a candidate profile and claim set. Hard disqualifiers
// short-circuit to zero; everything else is a sum of bounded sub-scores,
// so the same inputs always produce the same result.
package scoring

import (
	"fmt"
	"strings"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/matching"
	"github.com/dmartin/fitscore/internal/requirements"
	"github.com/dmartin/fitscore/internal/types"
)

// ScoreJob evaluates one job against the profile and claim set. The result
// is self-contained: score, label, per-dimension breakdown, matched
// requirements, and the reasons behind the verdict. Inputs are never
// mutated. A disqualified job scores zero with an empty breakdown and no
// requirement extraction.
func ScoreJob(job *types.Job, profile *types.Profile, claims []types.Claim, lex *lexicon.Lexicon) *types.ScoringResult {
	if lex == nil {
		lex = lexicon.Default()
	}

	if dq := disqualifiers(job, profile); len(dq) > 0 {
		return &types.ScoringResult{
			FitScore:      0,
			FitLabel:      types.LabelPass,
			Disqualifiers: dq,
			ReasonsToPass: dq,
		}
	}

	result := &types.ScoringResult{}
	result.Breakdown.RoleScope = roleScopeScore(job, lex)
	result.Breakdown.Compensation = compensationScore(job, profile, lex)
	result.Breakdown.CompanyStage = companyStageScore(job, lex)
	result.Breakdown.DomainFit = domainFitScore(job, lex)

	penalty, redFlags := riskPenalty(job, lex)
	result.Breakdown.RiskPenalty = penalty
	result.RedFlags = redFlags

	score := result.Breakdown.RoleScope +
		result.Breakdown.Compensation +
		result.Breakdown.CompanyStage +
		result.Breakdown.DomainFit -
		result.Breakdown.RiskPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.FitScore = score
	result.FitLabel = types.LabelForScore(score)

	reqs := requirements.Extract(job.Description, lex)
	result.Requirements = matching.MatchRequirements(reqs, claims)

	result.ReasonsToPursue, result.ReasonsToPass = buildReasons(job, profile, result)
	return result
}

// buildReasons turns the breakdown and requirement verdicts into the
// human-readable pursue and pass lists.
func buildReasons(job *types.Job, profile *types.Profile, result *types.ScoringResult) (pursue, pass []string) {
	if result.Breakdown.RoleScope >= 20 {
		pursue = append(pursue, "strong senior scope signals in the posting")
	}
	if result.Breakdown.Compensation >= 18 {
		pursue = append(pursue, "compensation at or above target")
	} else if result.Breakdown.Compensation == 0 {
		pass = append(pass, "stated compensation below floor")
	}
	if result.Breakdown.DomainFit >= 10 {
		pursue = append(pursue, "high domain overlap")
	}
	for _, target := range profile.TargetRoles {
		if strings.Contains(strings.ToLower(job.Title), strings.ToLower(target)) {
			pursue = append(pursue, "title matches target role: "+target)
			break
		}
	}

	var missingMust int
	for i := range result.Requirements {
		req := &result.Requirements[i]
		if req.Priority != types.PriorityMust {
			continue
		}
		switch req.Match {
		case types.MatchMet:
			pursue = append(pursue, "meets requirement: "+req.Description)
		case types.MatchMissing:
			missingMust++
		}
	}
	if missingMust > 0 {
		pass = append(pass, fmt.Sprintf("%d unmet must-have requirements", missingMust))
	}
	if result.Breakdown.RiskPenalty >= 5 {
		pass = append(pass, "posting carries multiple risk signals")
	}
	return pursue, pass
}
