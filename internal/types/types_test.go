package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaim_EvidenceCount(t *testing.T) {
	c := Claim{
		Responsibilities: []string{"a", "b"},
		Outcomes:         []Outcome{{Description: "c"}},
		Tools:            []string{"HubSpot"},
		Skills:           []string{"seo", "abm"},
	}

	assert.Equal(t, 6, c.EvidenceCount())
	assert.Equal(t, 0, (&Claim{}).EvidenceCount())
}

func TestClaim_Citation(t *testing.T) {
	full := Claim{Role: "Growth Manager", Company: "Acme"}
	roleOnly := Claim{Role: "Growth Manager"}
	companyOnly := Claim{Company: "Acme"}

	assert.Equal(t, "Growth Manager at Acme", full.Citation())
	assert.Equal(t, "Growth Manager", roleOnly.Citation())
	assert.Equal(t, "Acme", companyOnly.Citation())
}

func TestClaim_CloneIsDeep(t *testing.T) {
	original := Claim{
		Role:             "Manager",
		Responsibilities: []string{"first"},
		Outcomes:         []Outcome{{Description: "outcome"}},
		Tools:            []string{"HubSpot"},
	}

	clone := original.Clone()
	clone.Responsibilities[0] = "changed"
	clone.Tools[0] = "changed"

	assert.Equal(t, "first", original.Responsibilities[0])
	assert.Equal(t, "HubSpot", original.Tools[0])
}

func TestRequirement_SortKeyOrdering(t *testing.T) {
	reqs := []Requirement{
		{Type: ReqSkill, Priority: PriorityPreferred},
		{Type: ReqTool, Priority: PriorityMust},
		{Type: ReqExperience, Priority: PriorityMust},
		{Type: ReqExperience, Priority: PriorityPreferred},
	}

	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].SortKey() < reqs[j].SortKey()
	})

	require.Len(t, reqs, 4)
	assert.Equal(t, ReqExperience, reqs[0].Type)
	assert.Equal(t, PriorityMust, reqs[0].Priority)
	assert.Equal(t, ReqTool, reqs[1].Type)
	assert.Equal(t, PriorityPreferred, reqs[2].Priority)
	assert.Equal(t, PriorityPreferred, reqs[3].Priority)
}

func TestRequirement_SortKeyUnknownTypeRanksLast(t *testing.T) {
	other := Requirement{Type: "mystery", Priority: PriorityMust}
	cert := Requirement{Type: ReqCertification, Priority: PriorityMust}

	assert.Greater(t, other.SortKey(), cert.SortKey())
}

func TestValidateProfile_LocationPref(t *testing.T) {
	assert.NoError(t, ValidateProfile(&Profile{LocationPref: "remote"}))
	assert.NoError(t, ValidateProfile(&Profile{}))
	assert.Error(t, ValidateProfile(&Profile{LocationPref: "moon"}))
}

func TestValidateJob_RequiresDescription(t *testing.T) {
	assert.Error(t, ValidateJob(&Job{Title: "Director"}))
	assert.NoError(t, ValidateJob(&Job{Description: "A real posting"}))
}
