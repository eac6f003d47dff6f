package model

import (
	"strings"
	"time"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

const (
	ContentTypeHTML     = "html"
	ContentTypeMarkdown = "markdown"
)

type Post struct {
	ID              uint64     `gorm:"primaryKey"`
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_post_slug" json:"slug"`
	AuthorID        uint64     `gorm:"not null;index:idx_author_id" json:"author_id"`
	CategoryID      *uint64    `gorm:"index:idx_category_id" json:"category_id"` // 分类删除后置空
	Excerpt         string     `gorm:"type:varchar(300)" json:"excerpt"`
	ContentType     string     `gorm:"type:varchar(10);not null;default:html" json:"content_type"`
	ContentHTML     string     `gorm:"type:longtext" json:"content_html"`
	ContentMarkdown string     `gorm:"type:longtext" json:"content_markdown"`
	Status          string     `gorm:"type:varchar(10);not null;default:draft;index:idx_status" json:"status"`
	IsFeatured      bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_featured"`
	Views           uint64     `gorm:"not null;default:0" json:"views"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `gorm:"index:idx_published_at" json:"published_at"`

	// 关联关系
	Author   User       `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Tags     []*Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
	Comments []*Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// ActiveContent 按 content_type 返回当前生效的正文
func (p *Post) ActiveContent() string {
	if p.ContentType == ContentTypeMarkdown {
		return p.ContentMarkdown
	}
	return p.ContentHTML
}

// ReadingTime 按每分钟 200 词估算阅读时长，最少 1 分钟
func (p *Post) ReadingTime() int {
	words := len(strings.Fields(p.ActiveContent()))
	if t := words / 200; t > 1 {
		return t
	}
	return 1
}
