package model

import (
	"time"
)

type Review struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	UserID    string  `gorm:"type:varchar(128);not null;index:idx_review_user" json:"user_id"`
	Source    string  `gorm:"type:varchar(32);not null;index:idx_review_source" json:"source"`
	ServiceID *string `gorm:"type:varchar(64);index:idx_review_service" json:"service_id"`
	Rating    int     `gorm:"not null;default:3" json:"rating"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	// Sentiment stays "analyzing" until the classifier has run over the record.
	Sentiment string    `gorm:"type:varchar(16);not null;default:analyzing;index:idx_review_sentiment" json:"sentiment"`
	Link      *string   `gorm:"type:varchar(512)" json:"link,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_review_created" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
