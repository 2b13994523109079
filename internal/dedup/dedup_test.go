package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartin/fitscore/internal/types"
)

func makeClaim(id, draft, company, role, start, end string) types.Claim {
	return types.Claim{
		ID: id, Draft: draft, Company: company, Role: role,
		StartDate: start, EndDate: end,
		Status: types.StatusActive, Included: true,
	}
}

func TestDedupe_CollapsesIdenticalClaims(t *testing.T) {
	a := makeClaim("a", "v1", "Acme Corp", "Growth Manager", "2020", "2022")
	a.Responsibilities = []string{"Owned the demand generation pipeline"}
	b := makeClaim("b", "v2", "Acme, Inc.", "Growth Manager", "2020", "2022")
	b.Responsibilities = []string{"Owned the demand generation pipeline"}

	out := Dedupe([]types.Claim{a, b})

	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestDedupe_RicherClaimSurvives(t *testing.T) {
	thin := makeClaim("thin", "v1", "Acme", "Growth Manager", "2020", "2022")
	thin.Responsibilities = []string{"Owned the demand generation pipeline"}
	rich := makeClaim("rich", "v2", "Acme", "Growth Manager", "2020", "2022")
	rich.Responsibilities = []string{"Owned the demand generation pipeline"}
	rich.Tools = []string{"HubSpot", "Salesforce"}

	out := Dedupe([]types.Claim{thin, rich})

	require.Len(t, out, 1)
	assert.Equal(t, "rich", out[0].ID)
}

func TestDedupe_TieFavorsEarliest(t *testing.T) {
	a := makeClaim("first", "v1", "Acme", "Growth Manager", "2020", "2022")
	a.Responsibilities = []string{"Owned the demand generation pipeline"}
	b := makeClaim("second", "v2", "Acme", "Growth Manager", "2020", "2022")
	b.Responsibilities = []string{"Owned the demand generation pipeline"}

	out := Dedupe([]types.Claim{a, b})

	require.Len(t, out, 1)
	assert.Equal(t, "first", out[0].ID)
}

func TestDedupe_DifferentTimeframesKeptApart(t *testing.T) {
	a := makeClaim("a", "v1", "Acme", "Growth Manager", "2018", "2020")
	b := makeClaim("b", "v2", "Acme", "Growth Manager", "2020", "2022")

	out := Dedupe([]types.Claim{a, b})

	assert.Len(t, out, 2)
}

func TestDedupe_DifferentMetricSignaturesKeptApart(t *testing.T) {
	a := makeClaim("a", "v1", "Acme", "Growth Manager", "2020", "2022")
	a.Responsibilities = []string{"Owned the demand generation pipeline"}
	a.Outcomes = []types.Outcome{{Description: "Grew revenue by 40%", Metric: "40%", IsNumeric: true}}
	b := makeClaim("b", "v2", "Acme", "Growth Manager", "2020", "2022")
	b.Responsibilities = []string{"Owned the demand generation pipeline"}
	b.Outcomes = []types.Outcome{{Description: "Grew revenue by 60%", Metric: "60%", IsNumeric: true}}

	out := Dedupe([]types.Claim{a, b})

	assert.Len(t, out, 2)
}

func TestDedupe_Idempotent(t *testing.T) {
	a := makeClaim("a", "v1", "Acme", "Growth Manager", "2020", "2022")
	a.Responsibilities = []string{"Owned the demand generation pipeline"}
	b := makeClaim("b", "v2", "Acme", "Growth Manager", "2020", "2022")
	b.Responsibilities = []string{"Owned the demand generation pipeline"}
	c := makeClaim("c", "v1", "Beta", "Analyst", "2016", "2018")

	once := Dedupe([]types.Claim{a, b, c})
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}

func TestDedupe_DoesNotMutateInput(t *testing.T) {
	a := makeClaim("a", "v1", "Acme", "Growth Manager", "2020", "2022")
	a.Tools = []string{"HubSpot"}
	in := []types.Claim{a}

	out := Dedupe(in)
	out[0].Tools[0] = "changed"

	assert.Equal(t, "HubSpot", in[0].Tools[0])
}
