package dedup

import (
	"strings"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

// lowConfidenceThreshold marks claims whose extraction was too thin to
// trust without a human look. They stay in the set but are sent to review.
const lowConfidenceThreshold = 0.3

// DetectConflicts flags claims from different import batches that report
// the same kind of metric for the same company with numbers or timeframes
// that disagree. Every member of a conflicting group is marked
// StatusConflict and excluded; nothing is dropped. Low-confidence claims
// are routed to needs_review instead. The input is not mutated.
func DetectConflicts(claims []types.Claim, lex *lexicon.Lexicon) []types.Claim {
	if lex == nil {
		lex = lexicon.Default()
	}
	out := make([]types.Claim, 0, len(claims))
	for _, c := range claims {
		out = append(out, c.Clone())
	}

	// group index positions by (company, metric kind)
	groups := make(map[string][]int)
	for i := range out {
		if out[i].Status != types.StatusActive {
			continue
		}
		company := textutil.NormalizeCompany(out[i].Company)
		for _, kind := range metricKinds(&out[i], lex) {
			key := company + "|" + kind
			groups[key] = append(groups[key], i)
		}
	}

	for _, idxs := range groups {
		if conflicting(out, idxs) {
			for _, i := range idxs {
				out[i].Status = types.StatusConflict
				out[i].Included = false
			}
		}
	}

	for i := range out {
		if out[i].Status == types.StatusActive && out[i].Confidence < lowConfidenceThreshold {
			out[i].Status = types.StatusNeedsReview
			out[i].ReviewStatus = types.ReviewNeeded
		}
	}
	return out
}

// conflicting reports whether the group spans more than one draft and its
// members disagree on values or timeframes. Claims from a single import
// batch are never in conflict with each other.
func conflicting(claims []types.Claim, idxs []int) bool {
	if len(idxs) < 2 {
		return false
	}
	drafts := make(map[string]bool)
	for _, i := range idxs {
		drafts[claims[i].Draft] = true
	}
	if len(drafts) < 2 {
		return false
	}
	first := idxs[0]
	for _, i := range idxs[1:] {
		if metricSignature(&claims[i]) != metricSignature(&claims[first]) {
			return true
		}
		if claims[i].StartDate != claims[first].StartDate || claims[i].EndDate != claims[first].EndDate {
			return true
		}
	}
	return false
}

// metricKinds classifies a claim's numeric outcomes into metric categories
// using the first matching keyword, in catalog order.
func metricKinds(c *types.Claim, lex *lexicon.Lexicon) []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, o := range c.Outcomes {
		if !o.IsNumeric {
			continue
		}
		lower := strings.ToLower(o.Description)
		for _, mk := range lex.MetricKeywords {
			if strings.Contains(lower, mk.Keyword) {
				if !seen[mk.Type] {
					seen[mk.Type] = true
					kinds = append(kinds, mk.Type)
				}
				break
			}
		}
	}
	return kinds
}
