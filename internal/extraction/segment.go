package extraction

import "strings"

// bulletGlyphs are the markers decoders leave at the start of list lines.
// The dash and asterisk variants require a following space so that stray
// hyphenated words are not mistaken for bullets.
var bulletGlyphs = []string{"•", "●", "◦", "▪", "‣", "⁃", "✅", "✔", "➤", "➔"}

var dashBullets = []string{"- ", "– ", "— ", "* "}

// isBulletLine reports whether line is a bulleted evidence line
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(trimmed, g) && len(trimmed) > len(g) {
			return true
		}
	}
	for _, d := range dashBullets {
		if strings.HasPrefix(trimmed, d) {
			return true
		}
	}
	return false
}

// stripBullet removes the leading bullet glyph and surrounding whitespace
func stripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(trimmed, g) {
			return strings.TrimSpace(trimmed[len(g):])
		}
	}
	for _, d := range dashBullets {
		if strings.HasPrefix(trimmed, d) {
			return strings.TrimSpace(trimmed[len(d):])
		}
	}
	return strings.TrimSpace(trimmed)
}

// splitBlocks divides text into coarse blocks on blank-line boundaries
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// splitSegments further divides a block into per-experience segments. A
// segment is cut when a later line looks like a new experience header while
// the current segment already carries bullet or outcome evidence. The
// evidence condition keeps ordinary bullet continuation from splitting one
// role, while still separating stacked roles inside a single block.
func splitSegments(block []string) [][]string {
	var segments [][]string
	var current []string
	hasEvidence := false
	for _, line := range block {
		if len(current) > 0 && hasEvidence && looksLikeNewHeader(line) {
			segments = append(segments, current)
			current = nil
			hasEvidence = false
		}
		current = append(current, line)
		if isBulletLine(line) {
			hasEvidence = true
		} else if _, ok := outcomeMetric(line); ok {
			hasEvidence = true
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// looksLikeNewHeader reports whether a line starts a fresh experience entry:
// an explicit Role:/Company: label, or a date range alongside role or
// company wording.
func looksLikeNewHeader(line string) bool {
	if isBulletLine(line) {
		return false
	}
	trimmed := strings.TrimSpace(line)
	if roleLabelRe.MatchString(trimmed) || companyLabelRe.MatchString(trimmed) {
		return true
	}
	if containsAtPair(trimmed) && !isNarrative(trimmed) {
		return true
	}
	if !hasPeriod(trimmed) {
		return false
	}
	_, _, rest, _ := extractPeriod(trimmed)
	if rest == "" {
		// A bare date line also signals a new entry when evidence precedes it
		return true
	}
	return looksLikeRole(rest) || looksLikeCompany(rest) || containsAtPair(rest)
}
