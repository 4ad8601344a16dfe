package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"mooddiary/diary/sources/psql/dao"
	"mooddiary/diary/sources/psql/testdb"
	"mooddiary/diary/types"
	"mooddiary/diary/utils/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shanghai = time.FixedZone("UTC+8", 8*3600)

func setupMoodController(t *testing.T, now time.Time) *MoodController {
	t.Helper()
	return NewMoodController(dao.NewMoodDAO(testdb.Open(t)), shanghai).
		WithClock(func() time.Time { return now })
}

func TestSaveMoodUsesConfiguredTimezone(t *testing.T) {
	// 2024-02-29 18:00 UTC is already 1 March at UTC+8.
	c := setupMoodController(t, time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC))
	ctx := context.Background()

	date, err := c.SaveMood(ctx, types.SaveMoodRequest{Content: "spring", Mood: "high"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", date)

	rec, err := c.GetMood(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "spring", rec.Content)
}

func TestSaveMoodTwiceSameDayOverwrites(t *testing.T) {
	c := setupMoodController(t, time.Date(2024, 2, 3, 2, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := c.SaveMood(ctx, types.SaveMoodRequest{Content: "morning", Mood: "low"})
	require.NoError(t, err)
	_, err = c.SaveMood(ctx, types.SaveMoodRequest{Content: "evening", Mood: "high"})
	require.NoError(t, err)

	month, err := c.GetMonth(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, month, 1)
	assert.Equal(t, types.MonthEntry{Content: "evening", Mood: "high", Date: "2024-02-03"}, month[3])
}

func TestSaveMoodValidation(t *testing.T) {
	c := setupMoodController(t, time.Now())
	for _, req := range []types.SaveMoodRequest{
		{Content: "", Mood: "low"},
		{Content: "   ", Mood: "low"},
		{Content: "text", Mood: ""},
		{},
	} {
		_, err := c.SaveMood(context.Background(), req)
		assert.True(t, apperr.Is(err, apperr.CodeValidation), "%+v: %v", req, err)
	}
}

func TestSaveMoodKeepsUnknownMood(t *testing.T) {
	c := setupMoodController(t, time.Date(2024, 2, 3, 2, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := c.SaveMood(ctx, types.SaveMoodRequest{Content: "odd", Mood: "ecstatic"})
	require.NoError(t, err)

	rec, err := c.GetMood(ctx, "2024-02-03")
	require.NoError(t, err)
	assert.Equal(t, "ecstatic", rec.Mood)
}

func TestGetMoodErrors(t *testing.T) {
	c := setupMoodController(t, time.Now())

	_, err := c.GetMood(context.Background(), "2024-02-03")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	_, err = c.GetMood(context.Background(), "03/02/2024")
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestDeleteMood(t *testing.T) {
	c := setupMoodController(t, time.Date(2024, 2, 3, 2, 0, 0, 0, time.UTC))
	ctx := context.Background()

	assert.True(t, apperr.Is(c.DeleteMood(ctx, "2024-02-03"), apperr.CodeNotFound))

	_, err := c.SaveMood(ctx, types.SaveMoodRequest{Content: "x", Mood: "2"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteMood(ctx, "2024-02-03"))

	_, err = c.GetMood(ctx, "2024-02-03")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestGetMonthLeapYear(t *testing.T) {
	db := testdb.Open(t)
	d := dao.NewMoodDAO(db)
	c := NewMoodController(d, shanghai)
	ctx := context.Background()

	for _, date := range []string{"2024-01-31", "2024-02-01", "2024-02-29", "2024-03-01"} {
		require.NoError(t, d.Upsert(ctx, date, date, "medium"))
	}

	month, err := c.GetMonth(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.Len(t, month, 2)
	assert.Contains(t, month, 1)
	assert.Contains(t, month, 29)
	assert.NotContains(t, month, 30)
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	db := testdb.Open(t)
	c := NewMoodController(dao.NewMoodDAO(db), shanghai)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = c.GetMood(context.Background(), "2024-02-03")
	assert.True(t, apperr.Is(err, apperr.CodeStorage))
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "internal server error", appErr.Message)
	assert.NotNil(t, appErr.Cause)
}

func TestCalendarCurrentMonth(t *testing.T) {
	moods := setupMoodController(t, time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC))
	cal := NewCalendarController(moods)
	ctx := context.Background()

	_, err := moods.SaveMood(ctx, types.SaveMoodRequest{Content: "may day", Mood: "3"})
	require.NoError(t, err)

	g, err := cal.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2024, g.Year)
	assert.Equal(t, 5, g.Month)
	assert.Equal(t, 2, g.Leading)
	first := g.Cells[g.Leading]
	assert.Equal(t, 1, first.Day)
	assert.True(t, first.Clickable)
	assert.Equal(t, "mood-high", first.Class)
}
