package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	out := CleanText("Director of Growth\r\nAcme Corp\rRemote")

	assert.Equal(t, "Director of Growth\nAcme Corp\nRemote", out)
}

func TestCleanText_StripsZeroWidthCharacters(t *testing.T) {
	out := CleanText("Acme\u200b Corp\ufeff")

	assert.Equal(t, "Acme Corp", out)
}

func TestCleanText_CollapsesBlankLineRuns(t *testing.T) {
	out := CleanText("Role one\n\n\n\n\nRole two")

	assert.Equal(t, "Role one\n\nRole two", out)
}

func TestCleanText_CollapsesInternalSpacesKeepsIndent(t *testing.T) {
	out := CleanText("  •  Grew   pipeline  by 40%")

	assert.Equal(t, "  • Grew pipeline by 40%", out)
}

func TestCleanText_PreservesBulletGlyphs(t *testing.T) {
	out := CleanText("• First\n- Second\n")

	assert.Equal(t, "• First\n- Second", out)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  "))
}
