package dto

// HomeStatsDTO 首页统计块
type HomeStatsDTO struct {
	TotalPosts        int64    `json:"total_posts"`
	TotalViews        int64    `json:"total_views"`
	TotalAuthors      int64    `json:"total_authors"`
	ActiveSubscribers int64    `json:"active_subscribers"`
	PostsThisMonth    int64    `json:"posts_this_month"`
	TrendingIDs       []uint64 `json:"trending_ids"`
}

// HomeDTO 首页聚合，一次调用返回全部板块
type HomeDTO struct {
	Featured   []*PostDTO     `json:"featured"`
	Latest     []*PostDTO     `json:"latest"`
	Categories []*CategoryDTO `json:"categories"`
	Tags       []*TagDTO      `json:"tags"`
	Stats      *HomeStatsDTO  `json:"stats"`
}
