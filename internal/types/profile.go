// Package types provides type definitions for structured data used throughout the fit-scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Profile represents the candidate's search preferences and hard filters.
// It is supplied by the caller as plain data; the engine never mutates it.
type Profile struct {
	TargetRoles       []string    `json:"target_roles,omitempty"`
	CompFloor         int         `json:"comp_floor,omitempty" validate:"gte=0"`
	CompTarget        int         `json:"comp_target,omitempty" validate:"gte=0,gtefield=CompFloor|eq=0"`
	RequiredBenefits  []string    `json:"required_benefits,omitempty"`
	PreferredBenefits []string    `json:"preferred_benefits,omitempty"`
	LocationPref      string      `json:"location_preference,omitempty" validate:"omitempty,oneof=remote hybrid onsite any"`
	HardFilters       HardFilters `json:"hard_filters,omitempty"`
}

// HardFilters are the conditions that disqualify a job outright.
// Zero values mean "no limit" for the numeric fields.
type HardFilters struct {
	ExcludedEmploymentTypes []string `json:"excluded_employment_types,omitempty"`
	NeedsSponsorship        bool     `json:"needs_sponsorship,omitempty"`
	MaxTravelPercent        int      `json:"max_travel_percent,omitempty" validate:"gte=0,lte=100"`
	MaxOnsiteDaysPerWeek    int      `json:"max_onsite_days_per_week,omitempty" validate:"gte=0,lte=7"`
}

// Job represents one job posting under evaluation. Only Description is
// required for scoring; the structured fields refine it when present.
type Job struct {
	Title          string `json:"title,omitempty"`
	Company        string `json:"company,omitempty"`
	Description    string `json:"description" validate:"required"`
	CompMin        int    `json:"comp_min,omitempty" validate:"gte=0"`
	CompMax        int    `json:"comp_max,omitempty" validate:"gte=0,gtefield=CompMin|eq=0"`
	Location       string `json:"location,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
}

var validate = validator.New()

// ValidateProfile checks a profile for internally inconsistent values.
// Callers run this at the input boundary; the engine itself accepts any
// profile and degrades gracefully.
func ValidateProfile(p *Profile) error {
	return validate.Struct(p)
}

// ValidateJob checks a job record for internally inconsistent values
func ValidateJob(j *Job) error {
	return validate.Struct(j)
}
