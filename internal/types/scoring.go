// Package types provides type definitions for structured data used throughout the fit-scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Fit labels with their score thresholds
const (
	LabelPursue = "Pursue" // fit score >= 65
	LabelMaybe  = "Maybe"  // fit score >= 40
	LabelPass   = "Pass"   // everything else, and any disqualified job
)

// Breakdown holds the five named sub-scores behind a fit score
type Breakdown struct {
	RoleScope    int `json:"role_scope"`
	Compensation int `json:"compensation"`
	CompanyStage int `json:"company_stage"`
	DomainFit    int `json:"domain_fit"`
	RiskPenalty  int `json:"risk_penalty"`
}

// ScoringResult is the immutable output of one fit-scoring pass
type ScoringResult struct {
	FitScore        int           `json:"fit_score"`
	FitLabel        string        `json:"fit_label"`
	Disqualifiers   []string      `json:"disqualifiers,omitempty"`
	ReasonsToPursue []string      `json:"reasons_to_pursue,omitempty"`
	ReasonsToPass   []string      `json:"reasons_to_pass,omitempty"`
	RedFlags        []string      `json:"red_flags,omitempty"`
	Requirements    []Requirement `json:"requirements,omitempty"`
	Breakdown       Breakdown     `json:"breakdown"`
}

// LabelForScore maps a final score to its fit label
func LabelForScore(score int) string {
	switch {
	case score >= 65:
		return LabelPursue
	case score >= 40:
		return LabelMaybe
	default:
		return LabelPass
	}
}
