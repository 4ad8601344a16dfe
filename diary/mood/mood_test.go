package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw   string
		want  Level
		found bool
	}{
		{"low", Low, true},
		{"medium", Medium, true},
		{"high", High, true},
		{"1", Low, true},
		{"2", Medium, true},
		{"3", High, true},
		{" high ", High, true},
		{"ecstatic", "", false},
		{"4", "", false},
		{"", "", false},
		{"HIGH", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d, ok := Resolve(tt.raw)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, d.Level)
		})
	}
}

func TestDisplayClasses(t *testing.T) {
	d, ok := Resolve("2")
	assert.True(t, ok)
	assert.Equal(t, "😐", d.Glyph)
	assert.Equal(t, "mood-medium", d.Class)
}

func TestDefaultGlyphRotates(t *testing.T) {
	assert.Equal(t, "📝", DefaultGlyph(6))
	assert.Equal(t, "📄", DefaultGlyph(1))
	assert.Equal(t, DefaultGlyph(3), DefaultGlyph(9))
	assert.Equal(t, "🗓️", DefaultGlyph(29))
}

func TestLevelsIsACopy(t *testing.T) {
	ls := Levels()
	ls[0].Glyph = "x"
	assert.Equal(t, "😞", Levels()[0].Glyph)
}
