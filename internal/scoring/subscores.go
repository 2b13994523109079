package scoring

import (
	"math"
	"strings"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

// Sub-score caps. The four positive dimensions sum to 90; a perfect job
// still needs a clean risk profile and strong requirement coverage to reach
// the top of the scale.
const (
	roleScopeCap    = 30
	compensationCap = 25
	companyStageCap = 20
	domainFitCap    = 15
	riskPenaltyCap  = 10

	defaultStageScore = 8
	unknownCompScore  = 10

	domainSignalPoints = 2.5
)

// roleScopeScore rewards senior titles, strategic language, and team
// leadership signals.
func roleScopeScore(job *types.Job, lex *lexicon.Lexicon) int {
	title := strings.ToLower(job.Title)
	text := strings.ToLower(job.Description)
	score := 0

	for _, senior := range lex.SeniorTitles {
		if strings.Contains(title, senior) {
			score += 12
			break
		}
	}

	strategic := 0
	for _, signal := range lex.StrategicSignals {
		if strings.Contains(text, signal) {
			strategic++
		}
	}
	switch {
	case strategic >= 5:
		score += 12
	case strategic >= 3:
		score += 8
	case strategic >= 1:
		score += 4
	}

	for _, signal := range lex.TeamSignals {
		if strings.Contains(text, signal) {
			score += 6
			break
		}
	}

	if score > roleScopeCap {
		score = roleScopeCap
	}
	return score
}

// compensationScore grades the posting's range against the profile's floor
// and target, plus a point per mentioned benefit. A job that states no
// compensation scores the neutral middle rather than zero.
func compensationScore(job *types.Job, profile *types.Profile, lex *lexicon.Lexicon) int {
	compMax := job.CompMax
	if compMax == 0 {
		if _, parsed, ok := ParseCompRange(job.Description); ok {
			compMax = parsed
		}
	}

	score := unknownCompScore
	if compMax > 0 && profile.CompFloor > 0 {
		midpoint := profile.CompFloor
		if profile.CompTarget > profile.CompFloor {
			midpoint = (profile.CompFloor + profile.CompTarget) / 2
		}
		switch {
		case profile.CompTarget > 0 && compMax >= profile.CompTarget:
			score = 18
		case compMax >= midpoint:
			score = 14
		case compMax >= profile.CompFloor:
			score = 10
		default:
			score = 0
		}
	}

	benefits := 0
	text := strings.ToLower(job.Description)
	for _, keyword := range lex.BenefitKeywords {
		if strings.Contains(text, keyword) {
			benefits++
		}
	}
	if benefits > 7 {
		benefits = 7
	}
	score += benefits

	if score > compensationCap {
		score = compensationCap
	}
	return score
}

// companyStageScore takes the best matching stage keyword, or the neutral
// default when the posting says nothing about maturity.
func companyStageScore(job *types.Job, lex *lexicon.Lexicon) int {
	text := strings.ToLower(job.Description)
	best := 0
	found := false
	for _, stage := range lex.StageScores {
		if strings.Contains(text, stage.Phrase) {
			found = true
			if stage.Score > best {
				best = stage.Score
			}
		}
	}
	if !found {
		return defaultStageScore
	}
	if best > companyStageCap {
		best = companyStageCap
	}
	return best
}

// domainFitScore counts distinct domain signals in the posting
func domainFitScore(job *types.Job, lex *lexicon.Lexicon) int {
	text := strings.ToLower(job.Description)
	count := 0
	for _, signal := range lex.DomainSignals {
		if strings.Contains(text, signal) {
			count++
		}
	}
	score := int(math.Round(domainSignalPoints * float64(count)))
	if score > domainFitCap {
		score = domainFitCap
	}
	return score
}

// riskPenalty sums the weights of risk phrases found in the posting and
// returns the capped penalty with the matched reasons.
func riskPenalty(job *types.Job, lex *lexicon.Lexicon) (int, []string) {
	penalty := 0
	var reasons []string
	for _, signal := range lex.RiskSignals {
		if textutil.ContainsWord(job.Description, signal.Phrase) {
			penalty += signal.Weight
			reasons = append(reasons, signal.Reason)
		}
	}
	if penalty > riskPenaltyCap {
		penalty = riskPenaltyCap
	}
	return penalty, reasons
}
