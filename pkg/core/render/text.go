package render

import (
	"unicode"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.55 // average glyph advance as a fraction of font size
	baselineRatio = 0.35 // baseline offset below the vertical center
	minChars      = 3
)

// TruncateLabel shortens label so it fits in width at fontSize, marking the
// cut with "..". Labels that fit are returned unchanged.
func TruncateLabel(label string, width, fontSize float64) string {
	if fontSize <= 0 {
		return label
	}
	maxChars := max(minChars, int(width/(fontSize*fontCharWidth)))
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	runes := []rune(label)
	return string(runes[:maxChars-2]) + ".."
}

// Baseline returns the y at which text of fontSize appears vertically
// centered on cy.
func Baseline(cy, fontSize float64) float64 {
	return cy + fontSize*baselineRatio
}

// Initial returns the upper-cased first letter or digit of s, or "".
func Initial(s string) string {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}
