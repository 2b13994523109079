package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/types"
)

func TestExtractClaims_FullExperienceEntry(t *testing.T) {
	text := "Director of Growth at Acme Corp\n" +
		"Jan 2020 - Present\n" +
		"- Grew pipeline revenue by 150% YoY\n" +
		"- Implemented HubSpot marketing automation"

	claims := ExtractClaims(text, "resume-v1", lexicon.Default())

	require.Len(t, claims, 1)
	c := claims[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "resume-v1", c.Draft)
	assert.Equal(t, "Director of Growth", c.Role)
	assert.Equal(t, "Acme Corp", c.Company)
	assert.Equal(t, "Jan 2020", c.StartDate)
	assert.Empty(t, c.EndDate)

	require.Len(t, c.Outcomes, 1)
	assert.Equal(t, "150%", c.Outcomes[0].Metric)
	assert.True(t, c.Outcomes[0].IsNumeric)

	assert.Equal(t, []string{"HubSpot"}, c.Tools)
	assert.Contains(t, c.Skills, "marketing automation")

	assert.InDelta(t, 0.95, c.Confidence, 0.001)
	assert.Equal(t, types.ReviewApproved, c.ReviewStatus)
	assert.Equal(t, types.StatusActive, c.Status)
	assert.True(t, c.Included)
}

func TestExtractClaims_MultipleBlocksSeparatedByBlankLines(t *testing.T) {
	text := "Marketing Manager at Beta Inc\n" +
		"2018 - 2020\n" +
		"- Managed email campaigns in Marketo\n" +
		"\n" +
		"Director of Demand Generation at Gamma Labs\n" +
		"2020 - 2023\n" +
		"- Increased MQL volume by 3x"

	claims := ExtractClaims(text, "v1", nil)

	require.Len(t, claims, 2)
	assert.Equal(t, "Beta Inc", claims[0].Company)
	assert.Equal(t, "Gamma Labs", claims[1].Company)
	assert.Equal(t, "2018", claims[0].StartDate)
	assert.Equal(t, "2020", claims[0].EndDate)
}

func TestExtractClaims_StackedRolesInOneBlock(t *testing.T) {
	text := "Growth Manager at Delta Co\n" +
		"2016 - 2018\n" +
		"- Grew organic traffic by 80%\n" +
		"Senior Growth Manager at Delta Co\n" +
		"2018 - 2021\n" +
		"- Increased conversion rate by 25%"

	claims := ExtractClaims(text, "v1", nil)

	require.Len(t, claims, 2)
	assert.Equal(t, "Growth Manager", claims[0].Role)
	assert.Equal(t, "Senior Growth Manager", claims[1].Role)
}

func TestExtractClaims_RejectsSegmentWithoutIdentity(t *testing.T) {
	text := "Some introductory paragraph about my career goals.\n" +
		"- A stray bullet with no role or company"

	claims := ExtractClaims(text, "v1", nil)

	assert.Empty(t, claims)
}

func TestExtractClaims_RejectsSkillListAsRole(t *testing.T) {
	text := "SEO Manager, SEM Lead, Analytics Specialist\nAcme Corp\n2019 - 2021"

	claims := ExtractClaims(text, "v1", nil)

	assert.Empty(t, claims)
}

func TestExtractClaims_DatesWithoutEvidenceStillRetained(t *testing.T) {
	text := "Marketing Manager at Epsilon Ltd\n2015 - 2017"

	claims := ExtractClaims(text, "v1", nil)

	require.Len(t, claims, 1)
	assert.Equal(t, types.ReviewNeeded, claims[0].ReviewStatus)
	assert.Less(t, claims[0].Confidence, 0.9)
}

func TestExtractClaims_DeduplicatesBulletsWithinClaim(t *testing.T) {
	text := "Marketing Manager at Zeta Inc\n" +
		"2019 - 2022\n" +
		"- Ran quarterly campaign planning\n" +
		"- Ran quarterly campaign planning"

	claims := ExtractClaims(text, "v1", nil)

	require.Len(t, claims, 1)
	assert.Len(t, claims[0].Responsibilities, 1)
}

func TestExtractClaims_SkillCapEnforced(t *testing.T) {
	text := "Marketing Manager at Theta Corp\n" +
		"2018 - 2023\n" +
		"- demand generation, marketing automation, abm, content marketing, seo work\n" +
		"- email marketing, lead generation, growth marketing, product marketing work\n" +
		"- lifecycle marketing, field marketing, brand marketing, paid social work"

	claims := ExtractClaims(text, "v1", nil)

	require.Len(t, claims, 1)
	assert.LessOrEqual(t, len(claims[0].Skills), 8)
}

func TestComputeConfidence_PenaltiesAndClamp(t *testing.T) {
	bare := &types.Claim{Role: "Manager", Company: "Acme"}
	score := computeConfidence(bare)

	// role + company minus the missing-evidence penalty
	assert.InDelta(t, 0.36, score, 0.001)

	empty := &types.Claim{}
	assert.Equal(t, confidenceFloor, computeConfidence(empty))
}

func TestMergeFragments_JoinsDetachedBulletBlock(t *testing.T) {
	a := types.Claim{
		ID: "a", Company: "Acme Corp", Role: "Director of Growth",
		StartDate: "2020", Responsibilities: []string{"Owned the funnel"},
		Status: types.StatusActive, Included: true,
	}
	b := types.Claim{
		ID: "b", Company: "Acme, Inc.", Role: "Director of Growth",
		Outcomes: []types.Outcome{{Description: "Grew revenue by 40%", Metric: "40%", IsNumeric: true}},
		Status:   types.StatusActive, Included: true,
	}

	merged := mergeFragments([]types.Claim{a, b})

	require.Len(t, merged, 1)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "2020", merged[0].StartDate)
	assert.Len(t, merged[0].Responsibilities, 1)
	assert.Len(t, merged[0].Outcomes, 1)
}

func TestMergeFragments_ReachesPastInterveningClaim(t *testing.T) {
	a := types.Claim{
		ID: "a", Company: "Acme", Role: "Director of Growth",
		StartDate: "2020", Responsibilities: []string{"Owned the funnel"},
	}
	other := types.Claim{
		ID: "other", Company: "Beta", Role: "Consultant", StartDate: "2019",
	}
	b := types.Claim{
		ID: "b", Company: "Acme", Role: "Director of Growth",
		Responsibilities: []string{"Built the demand gen team"},
	}

	merged := mergeFragments([]types.Claim{a, other, b})

	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Len(t, merged[0].Responsibilities, 2)
	assert.Equal(t, "other", merged[1].ID)
}

func TestMergeFragments_DifferentCompaniesStaySeparate(t *testing.T) {
	a := types.Claim{ID: "a", Company: "Acme", Role: "Manager", StartDate: "2020"}
	b := types.Claim{ID: "b", Company: "Beta", Role: "Manager", StartDate: "2020"}

	merged := mergeFragments([]types.Claim{a, b})

	assert.Len(t, merged, 2)
}

func TestMergeFragments_ConflictingDatesStaySeparate(t *testing.T) {
	a := types.Claim{ID: "a", Company: "Acme", Role: "Manager", StartDate: "2018", EndDate: "2020"}
	b := types.Claim{ID: "b", Company: "Acme", Role: "Manager", StartDate: "2015", EndDate: "2017"}

	merged := mergeFragments([]types.Claim{a, b})

	assert.Len(t, merged, 2)
}
