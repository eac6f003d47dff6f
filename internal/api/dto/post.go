package dto

// PostDTO 列表场景的文章视图
type PostDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	ContentType string `json:"content_type"`
	Status      string `json:"status"`
	IsFeatured  bool   `json:"is_featured"`
	Views       uint64 `json:"views"`
	ReadingTime int    `json:"reading_time"`
	LikeCount   int64  `json:"like_count"`
	CreatedAt   string `json:"created_at"`
	PublishedAt string `json:"published_at"`

	// Author
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	AuthorName     string `json:"author_name"`

	Category *CategoryDTO `json:"category,omitempty"`
	Tags     []*TagDTO    `json:"tags"`
}

// PostPageDTO 分页文章集合
type PostPageDTO struct {
	Items      []*PostDTO `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
}

// PostDetailDTO 文章详情，含正文、评论树与相关推荐
type PostDetailDTO struct {
	PostDTO
	Content  string        `json:"content"`
	Liked    bool          `json:"liked"`
	Comments []*CommentDTO `json:"comments"`
	Related  []*PostDTO    `json:"related"`
}

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// CategoryPostsDTO 分类页：分类信息 + 该分类下的分页文章
type CategoryPostsDTO struct {
	Category *CategoryDTO `json:"category"`
	Posts    *PostPageDTO `json:"posts"`
}

// TagPostsDTO 标签页
type TagPostsDTO struct {
	Tag   *TagDTO      `json:"tag"`
	Posts *PostPageDTO `json:"posts"`
}

// AuthorPostsDTO 作者页
type AuthorPostsDTO struct {
	Author *AuthorDTO   `json:"author"`
	Posts  *PostPageDTO `json:"posts"`
}
