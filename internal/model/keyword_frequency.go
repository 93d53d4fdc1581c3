package model

import (
	"time"
)

// KeywordFrequency is one ranked term of the per-polarity word cloud.
// Same recompute-and-replace lifecycle as Insight.
type KeywordFrequency struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ServiceID string    `gorm:"type:varchar(64);not null;index:idx_keyword_service" json:"service_id"`
	Word      string    `gorm:"type:varchar(64);not null" json:"word"`
	Frequency int       `gorm:"not null;default:0" json:"frequency"`
	Sentiment string    `gorm:"type:varchar(16);not null" json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

func (KeywordFrequency) TableName() string {
	return "keyword_frequencies"
}
