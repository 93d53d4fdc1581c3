package model

import (
	"time"
)

// ServiceProfile describes one tracked product: its store identifiers and the
// search keywords used against the Naver open API.
type ServiceProfile struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_service_name" json:"name"`
	GooglePlayID string    `gorm:"type:varchar(128)" json:"google_play_id"`
	AppleStoreID string    `gorm:"type:varchar(64)" json:"apple_store_id"`
	Keywords     []string  `gorm:"serializer:json" json:"keywords"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ServiceProfile) TableName() string {
	return "service_profiles"
}
