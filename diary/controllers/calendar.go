package controllers

import (
	"context"
	"time"

	"mooddiary/diary/calendar"
	"mooddiary/diary/utils/dates"
)

type CalendarController struct {
	moods *MoodController
}

func NewCalendarController(moods *MoodController) *CalendarController {
	return &CalendarController{moods: moods}
}

func (c *CalendarController) Month(ctx context.Context, year int, month time.Month) (calendar.Grid, error) {
	entries, err := c.moods.GetMonth(ctx, year, month)
	if err != nil {
		return calendar.Grid{}, err
	}
	return calendar.Build(year, month, entries), nil
}

// Current is the month containing the diary's today.
func (c *CalendarController) Current(ctx context.Context) (calendar.Grid, error) {
	today, err := dates.Parse(c.moods.Today())
	if err != nil {
		return calendar.Grid{}, err
	}
	return c.Month(ctx, today.Year(), today.Month())
}
