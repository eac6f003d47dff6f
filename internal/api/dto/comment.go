package dto

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	Content  string  `json:"content" binding:"required" validate:"min=1,max=2000"`
	ParentID *uint64 `json:"parent_id"` // 空表示一级评论
}

// CommentDTO 评论树节点
type CommentDTO struct {
	ID         uint64        `json:"id"`
	AuthorName string        `json:"author_name"`
	Content    string        `json:"content"`
	CreatedAt  string        `json:"created_at"`
	Replies    []*CommentDTO `json:"replies"`
}

// CommentResultDTO 发表评论成功后的回显
type CommentResultDTO struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
