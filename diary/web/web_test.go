package web

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"mooddiary/diary/calendar"
	"mooddiary/diary/mood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticContainsPages(t *testing.T) {
	site := Static()
	for _, name := range []string{"index.html", "history.html", "css/style.css", "js/script.js", "js/history.js"} {
		info, err := fs.Stat(site, name)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestHistoryPageLoadsCalendarScript(t *testing.T) {
	body, err := fs.ReadFile(Static(), "history.html")
	require.NoError(t, err)
	assert.Contains(t, string(body), "js/history.js")
	assert.Contains(t, string(body), `id="detailModal"`)
}

func quoted(items []string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = "'" + it + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// The history page lays out its own empty grid when the calendar API fails;
// it must agree with calendar.Build.
func TestHistoryScriptOfflineGridMatchesServer(t *testing.T) {
	body, err := fs.ReadFile(Static(), "js/history.js")
	require.NoError(t, err)
	script := string(body)

	glyphs := make([]string, 6)
	for day := range glyphs {
		glyphs[day] = mood.DefaultGlyph(day)
	}
	assert.Contains(t, script, "const DEFAULT_GLYPHS = "+quoted(glyphs)+";")
	assert.Contains(t, script, "const WEEKDAYS = "+quoted(calendar.Weekdays)+";")
	assert.Contains(t, script, fmt.Sprintf("const GRID_CELLS = %d;", calendar.Cells))
	assert.Contains(t, script, "getUTCDay() + 6) % 7")
	assert.Contains(t, script, "state.grid = localGrid(state);")
	assert.NotContains(t, script, "cells: []")
}
