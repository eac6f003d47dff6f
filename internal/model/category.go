package model

import "time"

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_name" json:"name"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(50)" json:"icon"` // Emoji 或图标类名
	Color       string `gorm:"type:varchar(20);default:blue" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
