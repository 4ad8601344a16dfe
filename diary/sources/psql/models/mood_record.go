// diary/sources/psql/models/mood_record.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodRecord is one diary entry. Date is YYYY-MM-DD and unique, so string
// order is date order on every supported database.
type MoodRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_mood_records_date"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Mood      string    `json:"mood" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MoodRecord) TableName() string {
	return "mood_records"
}

func (r *MoodRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
