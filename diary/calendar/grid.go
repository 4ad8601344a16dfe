// Package calendar lays a month of diary entries out as a fixed 6x7,
// Monday-first grid.
package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mooddiary/diary/mood"
	"mooddiary/diary/types"
	"mooddiary/diary/utils/dates"
	"mooddiary/diary/utils/logging"

	"go.uber.org/zap"
)

const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols
)

var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one square of the grid. Blank cells pad the month on both ends and
// carry only Blank=true.
type Cell struct {
	Blank     bool   `json:"blank"`
	Day       int    `json:"day,omitempty"`
	Date      string `json:"date,omitempty"`
	Glyph     string `json:"glyph,omitempty"`
	Label     string `json:"label,omitempty"`
	Class     string `json:"class,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Content   string `json:"content,omitempty"`
	HasEntry  bool   `json:"has_entry"`
	Clickable bool   `json:"clickable"`
}

type Grid struct {
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Title    string               `json:"title"`
	Weekdays []string             `json:"weekdays"`
	Leading  int                  `json:"leading"`
	Cells    []Cell               `json:"cells"`
	Entries  types.MonthAggregate `json:"entries"`
}

// LeadingBlanks is the number of empty cells before the 1st in a
// Monday-first week.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// Build lays out the month. Entries whose mood does not resolve get the
// fallback glyph and are not clickable.
func Build(year int, month time.Month, entries types.MonthAggregate) Grid {
	if entries == nil {
		entries = types.MonthAggregate{}
	}
	g := Grid{
		Year:     year,
		Month:    int(month),
		Title:    fmt.Sprintf("%s %d", month, year),
		Weekdays: Weekdays,
		Leading:  LeadingBlanks(year, month),
		Cells:    make([]Cell, 0, Cells),
		Entries:  entries,
	}

	for i := 0; i < g.Leading; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}

	days := dates.DaysIn(year, month)
	for day := 1; day <= days; day++ {
		cell := Cell{Day: day, Date: dates.Format(year, month, day)}
		entry, ok := entries[day]
		switch {
		case !ok:
			cell.Glyph = mood.DefaultGlyph(day)
			cell.Class = "no-entry"
		default:
			cell.HasEntry = true
			if d, known := mood.Resolve(entry.Mood); known {
				cell.Glyph = d.Glyph
				cell.Label = d.Label
				cell.Class = d.Class
				cell.Mood = entry.Mood
				cell.Content = entry.Content
				cell.Clickable = true
			} else {
				logging.AppLogger.Warn("unrecognized mood value",
					zap.String("date", cell.Date),
					zap.String("mood", entry.Mood),
				)
				cell.Glyph = mood.FallbackGlyph
			}
		}
		g.Cells = append(g.Cells, cell)
	}

	for len(g.Cells) < Cells {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}
	return g
}

// RenderText writes the grid as a plain-text table, one week per line.
// Days with an entry are followed by the mood glyph.
func RenderText(w io.Writer, g Grid) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.Title)
	for _, wd := range g.Weekdays {
		fmt.Fprintf(&b, "%-6s", wd)
	}
	b.WriteString("\n")
	for i, c := range g.Cells {
		switch {
		case c.Blank:
			b.WriteString(strings.Repeat(" ", 6))
		case c.HasEntry:
			fmt.Fprintf(&b, "%2d %s  ", c.Day, c.Glyph)
		default:
			fmt.Fprintf(&b, "%2d    ", c.Day)
		}
		if (i+1)%Cols == 0 {
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
