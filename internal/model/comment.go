package model

import (
	"time"
)

type Comment struct {
	ID         uint64    `gorm:"primaryKey"`
	PostID     uint64    `gorm:"not null;index:idx_comment_post_id" json:"post_id"`
	AuthorID   uint64    `gorm:"not null" json:"author_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ParentID   *uint64   `gorm:"index:idx_parent_id" json:"parent_id"` // 空表示一级评论
	IsApproved bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Post   Post     `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author User     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Parent *Comment `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}
