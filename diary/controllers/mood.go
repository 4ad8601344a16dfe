// diary/controllers/mood.go
package controllers

import (
	"context"
	"strings"
	"time"

	"mooddiary/diary/sources/psql/dao"
	"mooddiary/diary/sources/psql/models"
	"mooddiary/diary/types"
	"mooddiary/diary/utils/apperr"
	"mooddiary/diary/utils/dates"
	"mooddiary/diary/utils/logging"

	"go.uber.org/zap"
)

type MoodController struct {
	dao *dao.MoodDAO
	loc *time.Location
	now func() time.Time
}

// NewMoodController saves entries under the current date in loc.
func NewMoodController(dao *dao.MoodDAO, loc *time.Location) *MoodController {
	return &MoodController{dao: dao, loc: loc, now: time.Now}
}

// WithClock replaces the wall clock, for tests.
func (c *MoodController) WithClock(now func() time.Time) *MoodController {
	c.now = now
	return c
}

// Today is the diary date a save would be recorded under.
func (c *MoodController) Today() string {
	return dates.Today(c.now(), c.loc)
}

func (c *MoodController) GetMood(ctx context.Context, date string) (*models.MoodRecord, error) {
	if _, err := dates.Parse(date); err != nil {
		return nil, apperr.NewValidation(err.Error())
	}
	record, err := c.dao.GetByDate(ctx, date)
	if err != nil {
		return nil, apperr.NewStorage(err)
	}
	if record == nil {
		return nil, apperr.NewNotFound(date)
	}
	return record, nil
}

// SaveMood records today's entry, replacing any earlier one from the same day.
// The mood is stored as sent; values outside the known levels are kept.
func (c *MoodController) SaveMood(ctx context.Context, req types.SaveMoodRequest) (string, error) {
	if strings.TrimSpace(req.Content) == "" || strings.TrimSpace(string(req.Mood)) == "" {
		return "", apperr.NewValidation("content and mood are required")
	}
	date := c.Today()
	if err := c.dao.Upsert(ctx, date, req.Content, string(req.Mood)); err != nil {
		return "", apperr.NewStorage(err)
	}
	logging.AppLogger.Info("mood saved", zap.String("date", date), zap.String("mood", string(req.Mood)))
	return date, nil
}

func (c *MoodController) DeleteMood(ctx context.Context, date string) error {
	if _, err := dates.Parse(date); err != nil {
		return apperr.NewValidation(err.Error())
	}
	deleted, err := c.dao.DeleteByDate(ctx, date)
	if err != nil {
		return apperr.NewStorage(err)
	}
	if !deleted {
		return apperr.NewNotFound(date)
	}
	logging.AppLogger.Info("mood deleted", zap.String("date", date))
	return nil
}

// GetMonth returns every entry of the month keyed by day of month.
func (c *MoodController) GetMonth(ctx context.Context, year int, month time.Month) (types.MonthAggregate, error) {
	start, end := dates.MonthRange(year, month)
	records, err := c.dao.ListRange(ctx, start, end)
	if err != nil {
		return nil, apperr.NewStorage(err)
	}
	out := make(types.MonthAggregate, len(records))
	for _, r := range records {
		t, err := dates.Parse(r.Date)
		if err != nil {
			logging.AppLogger.Warn("skipping record with malformed date", zap.String("date", r.Date))
			continue
		}
		out[t.Day()] = types.MonthEntry{Content: r.Content, Mood: r.Mood, Date: r.Date}
	}
	return out, nil
}
