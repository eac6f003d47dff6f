package consts

// 列表页与首页的分页规格
const (
	ListPageSize  = 9
	HomeGridSize  = 12
	AdminPageSize = 9
)

// 首页聚合的各板块上限
const (
	HomeFeaturedLimit = 5
	HomeCategoryLimit = 12
	HomeTagLimit      = 24
	TrendingLimit     = 10
	TrendingDays      = 30
	RelatedLimit      = 3
)

// CommentTimeLayout 评论时间的展示格式
const CommentTimeLayout = "January 2, 2006 at 3:04 PM"

const RoleAdmin = "ADMIN"
