package model

import "time"

type Newsletter struct {
	ID           uint64    `gorm:"primaryKey"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex:idx_newsletter_email" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
	IsActive     bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}
