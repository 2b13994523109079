// Package types provides type definitions for structured data used throughout the fit-scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Requirement types, in their stable secondary sort order
const (
	ReqExperience    = "experience"
	ReqSkill         = "skill"
	ReqTool          = "tool"
	ReqEducation     = "education"
	ReqCertification = "certification"
	ReqOther         = "other"
)

// Requirement priorities
const (
	PriorityMust      = "must"
	PriorityPreferred = "preferred"
)

// Requirement match verdicts
const (
	MatchMet     = "met"
	MatchPartial = "partial"
	MatchMissing = "missing"
)

// Requirement represents a single need extracted from a job posting
type Requirement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	YearsNeeded int    `json:"years_needed,omitempty"`
	Match       string `json:"match,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
}

// typeRank orders requirement types for the stable secondary sort key
var typeRank = map[string]int{
	ReqExperience:    0,
	ReqSkill:         1,
	ReqTool:          2,
	ReqEducation:     3,
	ReqCertification: 4,
	ReqOther:         5,
}

// SortKey returns the composite ordering key: all Must requirements before
// all Preferred, grouped by type within a priority.
func (r *Requirement) SortKey() int {
	key := typeRank[r.Type]
	if _, known := typeRank[r.Type]; !known {
		key = typeRank[ReqOther]
	}
	if r.Priority == PriorityPreferred {
		key += 10
	}
	return key
}
