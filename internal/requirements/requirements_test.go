package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/types"
)

func findByType(reqs []types.Requirement, reqType string) []types.Requirement {
	var out []types.Requirement
	for _, r := range reqs {
		if r.Type == reqType {
			out = append(out, r)
		}
	}
	return out
}

func TestExtract_SectionHeadersDrivePriority(t *testing.T) {
	description := "Requirements:\n" +
		"- 5+ years of experience in demand generation\n" +
		"- Experience with HubSpot\n" +
		"Nice to have:\n" +
		"- Experience with Tableau\n"

	reqs := Extract(description, lexicon.Default())

	var hubspot, tableau *types.Requirement
	for i := range reqs {
		switch reqs[i].Description {
		case "HubSpot":
			hubspot = &reqs[i]
		case "Tableau":
			tableau = &reqs[i]
		}
	}
	require.NotNil(t, hubspot)
	require.NotNil(t, tableau)
	assert.Equal(t, types.PriorityMust, hubspot.Priority)
	assert.Equal(t, types.PriorityPreferred, tableau.Priority)
}

func TestExtract_InlinePhraseOverridesSection(t *testing.T) {
	description := "Requirements:\n" +
		"- Marketo experience is a plus\n"

	reqs := Extract(description, lexicon.Default())

	tools := findByType(reqs, types.ReqTool)
	require.Len(t, tools, 1)
	assert.Equal(t, "Marketo", tools[0].Description)
	assert.Equal(t, types.PriorityPreferred, tools[0].Priority)
}

func TestExtract_YearsParsing(t *testing.T) {
	cases := []struct {
		line  string
		years int
	}{
		{"5+ years of marketing experience", 5},
		{"minimum of 7 years experience in B2B", 7},
		{"at least 3 years of experience", 3},
		{"3-5 years of demand generation experience", 3},
		{"10 years experience leading teams", 10},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			reqs := Extract(tc.line, nil)
			exp := findByType(reqs, types.ReqExperience)
			require.Len(t, exp, 1)
			assert.Equal(t, tc.years, exp[0].YearsNeeded)
		})
	}
}

func TestExtract_ImplausibleYearsRejected(t *testing.T) {
	reqs := Extract("50 years of experience required", nil)

	assert.Empty(t, findByType(reqs, types.ReqExperience))
}

func TestExtract_NearDuplicateExperienceKeepsFirst(t *testing.T) {
	description := "- 5+ years of demand generation experience\n" +
		"- 6 years of demand generation experience preferred\n"

	reqs := Extract(description, nil)

	exp := findByType(reqs, types.ReqExperience)
	require.Len(t, exp, 1)
	assert.Equal(t, 5, exp[0].YearsNeeded)
	assert.Equal(t, types.PriorityMust, exp[0].Priority)
}

func TestExtract_YearsWithoutExperienceKeyword(t *testing.T) {
	reqs := Extract("7+ years of B2B marketing leadership", nil)

	exp := findByType(reqs, types.ReqExperience)
	require.Len(t, exp, 1)
	assert.Equal(t, 7, exp[0].YearsNeeded)
	assert.Equal(t, types.PriorityMust, exp[0].Priority)
}

func TestExtract_NoSkillsFromSubstringsInsideWords(t *testing.T) {
	reqs := Extract("Collaborate across departments on the quarterly closeout", nil)

	assert.Empty(t, findByType(reqs, types.ReqSkill))
}

func TestExtract_ToolRecordedOncePerPosting(t *testing.T) {
	description := "- Deep HubSpot experience\n- Administer HubSpot workflows\n"

	reqs := Extract(description, nil)

	tools := findByType(reqs, types.ReqTool)
	require.Len(t, tools, 1)
	assert.Equal(t, "HubSpot", tools[0].Description)
}

func TestExtract_SkillVariantsCollapse(t *testing.T) {
	description := "- Experience with account-based marketing\n- Proven ABM track record\n"

	reqs := Extract(description, nil)

	skills := findByType(reqs, types.ReqSkill)
	require.Len(t, skills, 1)
	assert.Equal(t, "account-based marketing", skills[0].Description)
}

func TestExtract_EducationAndCertification(t *testing.T) {
	description := "- Bachelor's degree in Marketing or related field\n" +
		"- PMP certification is a plus\n"

	reqs := Extract(description, nil)

	require.Len(t, findByType(reqs, types.ReqEducation), 1)
	certs := findByType(reqs, types.ReqCertification)
	require.Len(t, certs, 1)
	assert.Equal(t, types.PriorityPreferred, certs[0].Priority)
}

func TestExtract_DescriptionTruncatedAtWordBoundary(t *testing.T) {
	long := "- 5 years of experience with an extremely long requirement line that " +
		"keeps going and going and mentions many additional qualifications beyond " +
		"any reasonable length for a single bullet point in a posting\n"

	reqs := Extract(long, nil)

	exp := findByType(reqs, types.ReqExperience)
	require.Len(t, exp, 1)
	assert.LessOrEqual(t, len(exp[0].Description), 120)
	assert.NotEqual(t, byte(' '), exp[0].Description[len(exp[0].Description)-1])
}

func TestExtract_StableSortMustBeforePreferred(t *testing.T) {
	description := "Nice to have:\n" +
		"- Tableau experience\n" +
		"Requirements:\n" +
		"- 5+ years of marketing experience\n" +
		"- HubSpot experience\n"

	reqs := Extract(description, lexicon.Default())

	require.GreaterOrEqual(t, len(reqs), 3)
	sawPreferred := false
	for _, r := range reqs {
		if r.Priority == types.PriorityPreferred {
			sawPreferred = true
		}
		if sawPreferred {
			assert.Equal(t, types.PriorityPreferred, r.Priority)
		}
	}
}

func TestExtract_EmptyDescription(t *testing.T) {
	assert.Empty(t, Extract("", nil))
}
