package dto

// CategoryDTO 分类视图，PostCount 只统计已发布文章
type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	PostCount   int64  `json:"post_count"`
}

// TagDTO 标签视图
type TagDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int64  `json:"post_count"`
}

// AuthorDTO 作者公开资料
type AuthorDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Location string `json:"location"`
}
