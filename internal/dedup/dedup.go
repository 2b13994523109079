// Package dedup collapses duplicate claims and flags contradictory ones.
// Both passes are pure: they return fresh slices of copies and never mutate
// their input, so a claim set can be re-run through them without drift.
package dedup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

// similarityThreshold is the Jaccard floor on combined evidence text for two
// claims with the same identity and timeframe to count as duplicates.
const similarityThreshold = 0.5

// Dedupe collapses claims that state the same position with the same
// evidence. Duplicates require an exact normalized company, role, and
// timeframe match, token similarity at or above the threshold, and
// identical numeric-metric signatures. The richer claim survives; ties
// favor the earliest. The result is idempotent: deduping an already
// deduped set returns it unchanged.
func Dedupe(claims []types.Claim) []types.Claim {
	kept := make([]types.Claim, 0, len(claims))
	for _, claim := range claims {
		candidate := claim.Clone()
		absorbed := false
		for i := range kept {
			if !sameClaim(&kept[i], &candidate) {
				continue
			}
			if richness(&candidate) > richness(&kept[i]) {
				kept[i] = candidate
			}
			absorbed = true
			break
		}
		if !absorbed {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func sameClaim(a, b *types.Claim) bool {
	if identityKey(a) != identityKey(b) {
		return false
	}
	if textutil.Jaccard(a.CombinedText(), b.CombinedText()) < similarityThreshold {
		return false
	}
	return metricSignature(a) == metricSignature(b)
}

func identityKey(c *types.Claim) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		textutil.NormalizeCompany(c.Company),
		strings.ToLower(textutil.NormalizeSpace(c.Role)),
		strings.ToLower(c.StartDate),
		strings.ToLower(c.EndDate))
}

// richness orders claims by how much evidence they carry. Numeric outcomes
// weigh double so a claim with measured results beats one with prose.
func richness(c *types.Claim) int {
	score := len(c.Responsibilities) + len(c.Tools) + len(c.Skills)
	for _, o := range c.Outcomes {
		if o.IsNumeric {
			score += 2
		} else {
			score++
		}
	}
	return score
}

// metricSignature is a canonical rendering of a claim's numeric outcomes,
// sorted so insertion order does not matter.
func metricSignature(c *types.Claim) string {
	var parts []string
	for _, o := range c.Outcomes {
		if o.IsNumeric {
			parts = append(parts, o.Metric)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}
