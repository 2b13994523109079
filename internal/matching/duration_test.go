package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_MonthAndYear(t *testing.T) {
	d, ok := parseDate("Mar 2020")

	assert.True(t, ok)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.March, d.Month())
}

func TestParseDate_FullMonthName(t *testing.T) {
	d, ok := parseDate("September 2018")

	assert.True(t, ok)
	assert.Equal(t, time.September, d.Month())
}

func TestParseDate_BareYearDefaultsToJanuary(t *testing.T) {
	d, ok := parseDate("2019")

	assert.True(t, ok)
	assert.Equal(t, 2019, d.Year())
	assert.Equal(t, time.January, d.Month())
}

func TestParseDate_Unparsable(t *testing.T) {
	_, ok := parseDate("last spring")

	assert.False(t, ok)
}

func TestClaimYears_ClosedRange(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, claimYears("Jan 2019", "Feb 2022", now))
}

func TestClaimYears_OngoingRole(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 6, claimYears("Jan 2020", "", now))
	assert.Equal(t, 6, claimYears("Jan 2020", "Present", now))
}

func TestClaimYears_UnparsableContributesZero(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 0, claimYears("", "", now))
	assert.Equal(t, 0, claimYears("sometime", "2020", now))
	assert.Equal(t, 0, claimYears("2020", "unknown", now))
}

func TestClaimYears_ReversedRange(t *testing.T) {
	assert.Equal(t, 0, claimYears("2022", "2019", time.Now()))
}
