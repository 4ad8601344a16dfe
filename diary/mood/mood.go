// Package mood describes the three mood levels a diary entry can carry and
// how each one is displayed.
//
// Stored mood values are free-form strings: the service does not reject
// unknown values, so callers resolve them here and fall back to
// FallbackGlyph when Resolve reports false.
package mood

import "strings"

type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Display is the presentation of a level in the calendar and the entry form.
type Display struct {
	Level Level  `json:"level"`
	Glyph string `json:"glyph"`
	Label string `json:"label"`
	Class string `json:"class"`
}

const FallbackGlyph = "❓"

var levels = []Display{
	{Level: Low, Glyph: "😞", Label: "Low", Class: "mood-low"},
	{Level: Medium, Glyph: "😐", Label: "Okay", Class: "mood-medium"},
	{Level: High, Glyph: "😄", Label: "Happy", Class: "mood-high"},
}

// legacy numeric values written by older clients
var aliases = map[string]Level{
	"1": Low,
	"2": Medium,
	"3": High,
}

var defaultGlyphs = []string{"📝", "📄", "📋", "📖", "📑", "🗓️"}

// Levels returns the displays in ascending order.
func Levels() []Display {
	out := make([]Display, len(levels))
	copy(out, levels)
	return out
}

// Resolve maps a stored value, including the numeric aliases, to its display.
func Resolve(raw string) (Display, bool) {
	value := strings.TrimSpace(raw)
	if level, ok := aliases[value]; ok {
		value = string(level)
	}
	for _, d := range levels {
		if string(d.Level) == value {
			return d, true
		}
	}
	return Display{}, false
}

// DefaultGlyph is shown on days without an entry. It rotates by day of month.
func DefaultGlyph(day int) string {
	return defaultGlyphs[day%len(defaultGlyphs)]
}
