// Package textutil provides tokenization and similarity helpers shared by the
// extraction, deduplication and matching passes.
package textutil

import (
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to token matching
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "such": true,
	"years": true, "year": true, "experience": true, "strong": true,
	"ability": true, "including": true, "across": true, "within": true,
}

// Tokenize splits text into lowercase keyword tokens, skipping stop words
// and tokens shorter than three runes. Preserves tech suffixes like "c++",
// "c#" and "node.js" by treating + # . as word characters.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// TokenSet returns the deduplicated token set of text
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}

// Jaccard computes token Jaccard similarity between two texts on
// stop-word-filtered tokens. Two empty token sets are identical (1.0);
// one empty set against a non-empty one is fully dissimilar (0.0).
func Jaccard(a, b string) float64 {
	as, bs := TokenSet(a), TokenSet(b)
	if len(as) == 0 && len(bs) == 0 {
		return 1.0
	}
	inter := 0
	for tok := range as {
		if bs[tok] {
			inter++
		}
	}
	union := len(as) + len(bs) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// Overlap computes token overlap relative to the smaller token set.
// Used for role-title similarity where one side is often a strict subset
// of the other ("Director of Growth" vs "Growth Director, Demand Gen").
func Overlap(a, b string) float64 {
	as, bs := TokenSet(a), TokenSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0.0
	}
	inter := 0
	for tok := range as {
		if bs[tok] {
			inter++
		}
	}
	smaller := len(as)
	if len(bs) < smaller {
		smaller = len(bs)
	}
	return float64(inter) / float64(smaller)
}

// companySuffixes are trailing corporate designators dropped by NormalizeCompany
var companySuffixes = []string{
	"inc", "llc", "corp", "corporation", "ltd", "limited", "co",
	"gmbh", "plc", "company",
}

// NormalizeCompany lowercases a company name, strips punctuation and a
// trailing corporate suffix, and collapses whitespace.
func NormalizeCompany(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	fields := strings.Fields(sb.String())
	if len(fields) > 1 {
		last := fields[len(fields)-1]
		for _, suffix := range companySuffixes {
			if last == suffix {
				fields = fields[:len(fields)-1]
				break
			}
		}
	}
	return strings.Join(fields, " ")
}

// NormalizeSpace trims and collapses internal whitespace runs to single spaces
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords caps s at max characters, cutting at a word boundary.
// No ellipsis is appended.
func TruncateWords(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := strings.LastIndex(s[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return strings.TrimRight(s[:cut], " ,;:")
}

// ContainsWord reports whether needle appears in haystack with word
// boundaries on both sides (case-insensitive). A boundary is anything that
// is not a letter or digit, so "SQL" does not match inside "SQLite" but
// does match in "SQL," or "(SQL)".
func ContainsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	h := strings.ToLower(haystack)
	n := strings.ToLower(needle)
	for idx := 0; idx <= len(h)-len(n); {
		i := strings.Index(h[idx:], n)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(n)
		beforeOK := start == 0 || !isWordByte(h[start-1])
		afterOK := end == len(h) || !isWordByte(h[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
