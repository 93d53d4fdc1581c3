package model

import (
	"time"
)

// Insight is one derived UX finding for a single HEART facet. Insights are
// recomputed wholesale on every analysis run; there is no incremental update.
type Insight struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	ServiceID    string    `gorm:"type:varchar(64);not null;index:idx_insight_service" json:"service_id"`
	Category     string    `gorm:"type:varchar(32);not null" json:"category"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Priority     string    `gorm:"type:varchar(16);not null" json:"priority"`
	MentionCount int       `gorm:"not null;default:0" json:"mention_count"`
	Trend        string    `gorm:"type:varchar(16)" json:"trend,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Insight) TableName() string {
	return "insights"
}
