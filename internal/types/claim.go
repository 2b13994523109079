// Package types provides type definitions for structured data used throughout the fit-scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Review status values assigned during extraction
const (
	ReviewApproved = "approved"
	ReviewNeeded   = "review_needed"
)

// Claim status values assigned by the deduplicator
const (
	StatusActive      = "active"
	StatusConflict    = "conflict"
	StatusNeedsReview = "needs_review"
)

// Claim represents a single structured work-history entry derived from free text
type Claim struct {
	ID               string    `json:"id"`
	Draft            string    `json:"draft,omitempty"`
	Company          string    `json:"company"`
	Role             string    `json:"role"`
	StartDate        string    `json:"start_date,omitempty"`
	EndDate          string    `json:"end_date,omitempty"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Outcomes         []Outcome `json:"outcomes,omitempty"`
	Tools            []string  `json:"tools,omitempty"`
	Skills           []string  `json:"skills,omitempty"`
	Confidence       float64   `json:"confidence"`
	ReviewStatus     string    `json:"review_status"`
	Status           string    `json:"status"`
	Included         bool      `json:"included"`
}

// Outcome represents a single result line attached to a claim
type Outcome struct {
	Description string `json:"description"`
	Metric      string `json:"metric,omitempty"`
	IsNumeric   bool   `json:"is_numeric"`
}

// EvidenceCount returns the total number of evidence items attached to the claim
func (c *Claim) EvidenceCount() int {
	return len(c.Responsibilities) + len(c.Outcomes) + len(c.Tools) + len(c.Skills)
}

// HasDates reports whether the claim carries any period information
func (c *Claim) HasDates() bool {
	return c.StartDate != "" || c.EndDate != ""
}

// CombinedText returns the claim's role, responsibilities and outcomes joined
// into one searchable string. Used by the matcher and the deduplicator.
func (c *Claim) CombinedText() string {
	var sb strings.Builder
	sb.WriteString(c.Role)
	for _, r := range c.Responsibilities {
		sb.WriteString(" ")
		sb.WriteString(r)
	}
	for _, o := range c.Outcomes {
		sb.WriteString(" ")
		sb.WriteString(o.Description)
	}
	return sb.String()
}

// Citation returns the short evidence string used when a claim satisfies a requirement
func (c *Claim) Citation() string {
	switch {
	case c.Role != "" && c.Company != "":
		return c.Role + " at " + c.Company
	case c.Role != "":
		return c.Role
	default:
		return c.Company
	}
}

// Clone returns a deep copy of the claim. Downstream passes copy, never
// mutate extraction output in place.
func (c *Claim) Clone() Claim {
	out := *c
	out.Responsibilities = append([]string(nil), c.Responsibilities...)
	out.Outcomes = append([]Outcome(nil), c.Outcomes...)
	out.Tools = append([]string(nil), c.Tools...)
	out.Skills = append([]string(nil), c.Skills...)
	return out
}
