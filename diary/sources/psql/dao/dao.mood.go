// diary/sources/psql/dao/dao.mood.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mooddiary/diary/sources/psql/models"
	"mooddiary/diary/utils/logging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodDAO struct {
	DB *gorm.DB
}

func NewMoodDAO(db *gorm.DB) *MoodDAO {
	return &MoodDAO{DB: db}
}

var dateColumn = clause.Column{Name: "date"}

// GetByDate returns nil, nil when no record exists for date.
func (dao *MoodDAO) GetByDate(ctx context.Context, date string) (*models.MoodRecord, error) {
	defer logging.LogDuration(ctx, "MoodDAO.GetByDate")()

	var record models.MoodRecord
	err := dao.DB.WithContext(ctx).
		Where(clause.Eq{Column: dateColumn, Value: date}).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get mood record %s: %w", date, err)
	}
	return &record, nil
}

// Upsert inserts the record or, when its date already exists, overwrites
// content, mood and updated_at in the same statement. The unique index on
// date arbitrates concurrent writers.
func (dao *MoodDAO) Upsert(ctx context.Context, date, content, mood string) error {
	defer logging.LogDuration(ctx, "MoodDAO.Upsert")()

	now := time.Now()
	record := models.MoodRecord{
		Date:      date,
		Content:   content,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{dateColumn},
			DoUpdates: clause.AssignmentColumns([]string{"content", "mood", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("upsert mood record %s: %w", date, err)
	}
	return nil
}

// ListRange returns records with start <= date <= end, ascending by date.
func (dao *MoodDAO) ListRange(ctx context.Context, start, end string) ([]models.MoodRecord, error) {
	defer logging.LogDuration(ctx, "MoodDAO.ListRange")()

	var records []models.MoodRecord
	err := dao.DB.WithContext(ctx).
		Where(clause.Gte{Column: dateColumn, Value: start}).
		Where(clause.Lte{Column: dateColumn, Value: end}).
		Order(clause.OrderByColumn{Column: dateColumn}).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list mood records %s..%s: %w", start, end, err)
	}
	return records, nil
}

// DeleteByDate reports whether a row was removed.
func (dao *MoodDAO) DeleteByDate(ctx context.Context, date string) (bool, error) {
	defer logging.LogDuration(ctx, "MoodDAO.DeleteByDate")()

	res := dao.DB.WithContext(ctx).
		Where(clause.Eq{Column: dateColumn, Value: date}).
		Delete(&models.MoodRecord{})
	if res.Error != nil {
		return false, fmt.Errorf("delete mood record %s: %w", date, res.Error)
	}
	return res.RowsAffected > 0, nil
}
