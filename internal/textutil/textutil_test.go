package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_FiltersStopWordsAndShortTokens(t *testing.T) {
	tokens := Tokenize("You will work with the marketing team on B2B campaigns")

	assert.Contains(t, tokens, "marketing")
	assert.Contains(t, tokens, "b2b")
	assert.Contains(t, tokens, "campaigns")
	assert.NotContains(t, tokens, "you")
	assert.NotContains(t, tokens, "will")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "on")
}

func TestTokenize_PreservesTechSuffixes(t *testing.T) {
	tokens := Tokenize("Built services in C++ and node.js")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
}

func TestTokenize_TrimsTrailingPeriod(t *testing.T) {
	tokens := Tokenize("Owned the revenue pipeline.")

	assert.Contains(t, tokens, "pipeline")
	assert.NotContains(t, tokens, "pipeline.")
}

func TestJaccard_IdenticalTexts(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard("demand generation pipeline", "demand generation pipeline"))
}

func TestJaccard_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard("", ""))
}

func TestJaccard_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("demand generation", ""))
}

func TestJaccard_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("kubernetes cluster", "marketing pipeline"))
}

func TestOverlap_SubsetRole(t *testing.T) {
	// one title is a strict token subset of the other
	score := Overlap("Director Growth", "Director of Growth Marketing")
	assert.Equal(t, 1.0, score)
}

func TestOverlap_EmptySide(t *testing.T) {
	assert.Equal(t, 0.0, Overlap("", "Director of Growth"))
}

func TestNormalizeCompany_StripsSuffixAndPunctuation(t *testing.T) {
	assert.Equal(t, "acme", NormalizeCompany("Acme Corp"))
	assert.Equal(t, "acme", NormalizeCompany("Acme, Inc."))
	assert.Equal(t, "acme", NormalizeCompany("ACME"))
}

func TestNormalizeCompany_KeepsSingleWordSuffix(t *testing.T) {
	// the whole name being a suffix word must not normalize to nothing
	assert.Equal(t, "corp", NormalizeCompany("Corp"))
}

func TestTruncateWords_CutsAtWordBoundary(t *testing.T) {
	out := TruncateWords("five plus years of experience in demand generation", 30)

	assert.LessOrEqual(t, len(out), 30)
	assert.False(t, out[len(out)-1] == ' ')
	assert.Equal(t, "five plus years of experience", out)
}

func TestTruncateWords_ShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "short", TruncateWords("short", 120))
}

func TestContainsWord_RespectsBoundaries(t *testing.T) {
	assert.True(t, ContainsWord("Experience with SQL required", "sql"))
	assert.True(t, ContainsWord("Tools: (SQL), Python", "sql"))
	assert.False(t, ContainsWord("Worked with SQLite databases", "sql"))
}

func TestContainsWord_EmptyNeedle(t *testing.T) {
	assert.False(t, ContainsWord("anything", ""))
}
