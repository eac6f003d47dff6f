package dto

// CategoryBaseDTO 分类 - 新增或修改，Slug 为空时由 Name 推导
type CategoryBaseDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=100"`
	Slug        string `json:"slug" validate:"max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
	Color       string `json:"color" validate:"max=20"`
}

// TagBaseDTO 标签 - 新增或修改
type TagBaseDTO struct {
	Name string `json:"name" binding:"required" validate:"min=1,max=50"`
	Slug string `json:"slug" validate:"max=50"`
}

// PostBaseDTO 文章 - 新增或修改
type PostBaseDTO struct {
	Title           string   `json:"title" binding:"required" validate:"min=1,max=200"`
	Slug            string   `json:"slug" validate:"max=200"`
	CategoryID      *uint64  `json:"category_id"`
	TagNames        []string `json:"tag_names" validate:"max=20"`
	Excerpt         string   `json:"excerpt" validate:"max=300"`
	ContentType     string   `json:"content_type" binding:"omitempty,oneof=html markdown"`
	ContentHTML     string   `json:"content_html"`
	ContentMarkdown string   `json:"content_markdown"`
	Status          string   `json:"status" binding:"omitempty,oneof=draft published"`
	IsFeatured      bool     `json:"is_featured"`
}

// BulkIDsDTO 批量操作请求
type BulkIDsDTO struct {
	IDs []uint64 `json:"ids" binding:"required,min=1,max=100"`
}

// AdminPostDTO 管理端编辑视图，两种正文形态都带出
type AdminPostDTO struct {
	PostDTO
	ContentHTML     string `json:"content_html"`
	ContentMarkdown string `json:"content_markdown"`
}

// AdminCommentDTO 评论审核队列条目
type AdminCommentDTO struct {
	ID         uint64 `json:"id"`
	PostID     uint64 `json:"post_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  string `json:"created_at"`
}

// AdminCommentPageDTO 评论分页
type AdminCommentPageDTO struct {
	Items      []*AdminCommentDTO `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int64              `json:"total_count"`
}

// NewsletterPageDTO 订阅记录分页
type NewsletterPageDTO struct {
	Items      []*NewsletterDTO `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalCount int64            `json:"total_count"`
}
