package render

import "strings"

const emphasisMarker = "**"

// Line is one physical line of a content item after markup parsing.
type Line struct {
	Text     string
	Emphasis bool
}

// ParseLine detects a whole-line "**...**" emphasis marker. Anything else,
// including a lone or unbalanced marker, is returned verbatim.
func ParseLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2*len(emphasisMarker) &&
		strings.HasPrefix(trimmed, emphasisMarker) &&
		strings.HasSuffix(trimmed, emphasisMarker) {
		return Line{Text: strings.ReplaceAll(raw, emphasisMarker, ""), Emphasis: true}
	}
	return Line{Text: raw}
}

// SplitItem breaks a content item into parsed lines.
func SplitItem(item string) []Line {
	parts := strings.Split(item, "\n")
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, ParseLine(p))
	}
	return lines
}
