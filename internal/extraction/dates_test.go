package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPeriod_MonthYearRange(t *testing.T) {
	start, end, rest, ok := extractPeriod("Acme Corp | Jan 2020 - Mar 2023")

	assert.True(t, ok)
	assert.Equal(t, "Jan 2020", start)
	assert.Equal(t, "Mar 2023", end)
	assert.Equal(t, "Acme Corp", rest)
}

func TestExtractPeriod_OngoingRole(t *testing.T) {
	start, end, _, ok := extractPeriod("Feb 2021 - Present")

	assert.True(t, ok)
	assert.Equal(t, "Feb 2021", start)
	assert.Empty(t, end)
}

func TestExtractPeriod_BareYears(t *testing.T) {
	start, end, rest, ok := extractPeriod("Beta Inc (2018 - 2020)")

	assert.True(t, ok)
	assert.Equal(t, "2018", start)
	assert.Equal(t, "2020", end)
	assert.Equal(t, "Beta Inc", rest)
}

func TestExtractPeriod_ToSeparator(t *testing.T) {
	start, end, _, ok := extractPeriod("June 2019 to December 2021")

	assert.True(t, ok)
	assert.Equal(t, "June 2019", start)
	assert.Equal(t, "December 2021", end)
}

func TestExtractPeriod_NoMatch(t *testing.T) {
	_, _, rest, ok := extractPeriod("Director of Growth")

	assert.False(t, ok)
	assert.Equal(t, "Director of Growth", rest)
}

func TestHasPeriod(t *testing.T) {
	assert.True(t, hasPeriod("Jan 2020 - Present"))
	assert.True(t, hasPeriod("2015-2019"))
	assert.False(t, hasPeriod("Grew revenue by 2020%"))
}
