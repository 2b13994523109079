package extraction

import (
	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

// roleMergeThreshold is the token-overlap floor for two role titles to be
// considered the same position written two ways.
const roleMergeThreshold = 0.6

// mergeFragments folds claims that describe the same position back into
// one. Resume formatting often splits a single role across blocks, a header
// block then a detached bullet block, and both parse as thin claims. Each
// claim is checked against every earlier survivor in order and absorbed by
// the first compatible one, so merging stays strictly left to right and
// order of appearance is preserved.
func mergeFragments(claims []types.Claim) []types.Claim {
	if len(claims) < 2 {
		return claims
	}
	merged := make([]types.Claim, 0, len(claims))
	for _, claim := range claims {
		absorbed := false
		for i := range merged {
			if compatibleFragments(&merged[i], &claim) {
				absorb(&merged[i], &claim)
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, claim)
		}
	}
	return merged
}

// compatibleFragments reports whether b is a continuation of a: same
// company, same or heavily overlapping role, and no contradictory dates.
func compatibleFragments(a, b *types.Claim) bool {
	if textutil.NormalizeCompany(a.Company) != textutil.NormalizeCompany(b.Company) {
		return false
	}
	sameRole := textutil.NormalizeSpace(a.Role) == textutil.NormalizeSpace(b.Role) ||
		textutil.Overlap(a.Role, b.Role) >= roleMergeThreshold
	if !sameRole {
		return false
	}
	return datesConsistent(a.StartDate, b.StartDate) && datesConsistent(a.EndDate, b.EndDate)
}

// datesConsistent allows one side to be blank; set on both sides they must
// agree.
func datesConsistent(a, b string) bool {
	return a == "" || b == "" || a == b
}

// absorb unions b's evidence into a and recomputes confidence and status.
// a keeps its identity and ID; blank dates are filled from b.
func absorb(a, b *types.Claim) {
	if a.StartDate == "" {
		a.StartDate = b.StartDate
	}
	if a.EndDate == "" {
		a.EndDate = b.EndDate
	}

	seen := make(map[string]bool)
	for _, r := range a.Responsibilities {
		seen[textutil.NormalizeSpace(r)] = true
	}
	for _, o := range a.Outcomes {
		seen[textutil.NormalizeSpace(o.Description)] = true
	}
	for _, r := range b.Responsibilities {
		if key := textutil.NormalizeSpace(r); !seen[key] {
			seen[key] = true
			a.Responsibilities = append(a.Responsibilities, r)
		}
	}
	for _, o := range b.Outcomes {
		if key := textutil.NormalizeSpace(o.Description); !seen[key] {
			seen[key] = true
			a.Outcomes = append(a.Outcomes, o)
		}
	}
	a.Tools = unionStrings(a.Tools, b.Tools)
	a.Skills = unionStrings(a.Skills, b.Skills)
	if len(a.Skills) > maxSkillsPerClaim {
		a.Skills = a.Skills[:maxSkillsPerClaim]
	}

	a.Confidence = computeConfidence(a)
	a.ReviewStatus = reviewStatus(a)
}

func unionStrings(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}
