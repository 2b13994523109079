// Package ingestion cleans decoder output before it reaches the engine.
// Binary-document decoding (PDF/DOCX) happens upstream; this package only
// normalizes what a decoder hands over: line endings, zero-width characters,
// and runaway blank lines. Bullet glyphs are preserved because the claim
// extractor uses them as structure hints.
package ingestion

import (
	"regexp"
	"strings"
)

// zeroWidthReplacer strips zero-width characters that PDF extraction
// commonly leaves behind.
var zeroWidthReplacer = strings.NewReplacer(
	"\u200b", "", // zero-width space
	"\u200c", "", // zero-width non-joiner
	"\u200d", "", // zero-width joiner
	"\ufeff", "", // byte order mark
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes raw decoder output while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = zeroWidthReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}
	result := strings.Join(cleaned, "\n")

	// Blank lines delimit experience blocks; collapse runs to a single one
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses internal space runs,
// keeping leading indentation and bullet glyphs intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	content := strings.Join(strings.Fields(trimmed), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
