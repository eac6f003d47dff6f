package repository

import (
	"Inkwell/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// PostQuery 已发布文章的列表过滤条件，零值字段不参与过滤
type PostQuery struct {
	Keyword    string
	CategoryID uint64
	TagID      uint64
	AuthorID   uint64
}

type PostRepo interface {
	CountPublished(ctx context.Context, q *PostQuery) (int64, error)
	ListPublished(ctx context.Context, q *PostQuery, offset, limit int) ([]*model.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	GetByID(ctx context.Context, id uint64) (*model.Post, error)

	IncrementViews(ctx context.Context, id uint64) error
	ListFeatured(ctx context.Context, limit int) ([]*model.Post, error)
	ListLatest(ctx context.Context, limit int) ([]*model.Post, error)
	ListRelated(ctx context.Context, categoryID, excludeID uint64, limit int) ([]*model.Post, error)

	SumPublishedViews(ctx context.Context) (int64, error)
	CountPublishedAuthors(ctx context.Context) (int64, error)
	CountPublishedSince(ctx context.Context, since time.Time) (int64, error)
	TrendingIDs(ctx context.Context, since time.Time, limit int) ([]uint64, error)

	CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	DeletePost(ctx context.Context, id uint64) error
	ListAll(ctx context.Context, offset, limit int) ([]*model.Post, int64, error)
	UpdateStatusByIDs(ctx context.Context, ids []uint64, status string, now time.Time) error
	SetFeaturedByIDs(ctx context.Context, ids []uint64, featured bool) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// publishedScope 统一的已发布过滤 + 关键词/分类/标签/作者条件
func (s *PostRepoImpl) publishedScope(ctx context.Context, q *PostQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("posts.status = ?", model.PostStatusPublished)

	if q == nil {
		return tx
	}
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		tx = tx.Where(
			"LOWER(posts.title) LIKE LOWER(?) OR LOWER(posts.excerpt) LIKE LOWER(?) OR LOWER(posts.content_html) LIKE LOWER(?) OR LOWER(posts.content_markdown) LIKE LOWER(?)",
			like, like, like, like,
		)
	}
	if q.CategoryID != 0 {
		tx = tx.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.TagID != 0 {
		tx = tx.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", q.TagID)
	}
	if q.AuthorID != 0 {
		tx = tx.Where("posts.author_id = ?", q.AuthorID)
	}
	return tx
}

func (s *PostRepoImpl) CountPublished(ctx context.Context, q *PostQuery) (int64, error) {
	var count int64
	err := s.publishedScope(ctx, q).Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) ListPublished(ctx context.Context, q *PostQuery, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.publishedScope(ctx, q).
		Preload("Author").Preload("Category").Preload("Tags").
		Order("posts.published_at DESC, posts.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ? AND status = ?", slug, model.PostStatusPublished).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViews 在数据库侧原子自增，避免并发读改写丢失更新
func (s *PostRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (s *PostRepoImpl) ListFeatured(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Where("status = ? AND is_featured = ?", model.PostStatusPublished, true).
		Order("published_at DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) ListLatest(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Where("status = ?", model.PostStatusPublished).
		Order("published_at DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) ListRelated(ctx context.Context, categoryID, excludeID uint64, limit int) ([]*model.Post, error) {
	if categoryID == 0 {
		return nil, nil
	}
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").
		Where("status = ? AND category_id = ? AND id <> ?", model.PostStatusPublished, categoryID, excludeID).
		Order("published_at DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) SumPublishedViews(ctx context.Context) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.PostStatusPublished).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}

func (s *PostRepoImpl) CountPublishedAuthors(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.PostStatusPublished).
		Distinct("author_id").
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) CountPublishedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ? AND published_at >= ?", model.PostStatusPublished, since).
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) TrendingIDs(ctx context.Context, since time.Time, limit int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ? AND published_at >= ?", model.PostStatusPublished, since).
		Order("views DESC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", post.ID).
			Select("Title", "Slug", "CategoryID", "Excerpt", "ContentType", "ContentHTML",
				"ContentMarkdown", "Status", "IsFeatured", "PublishedAt").
			Updates(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
}

// DeletePost 级联删除评论、点赞与标签关联后删除文章
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) ListAll(ctx context.Context, offset, limit int) ([]*model.Post, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, count, err
}

// UpdateStatusByIDs 批量状态流转：首次发布补打 published_at，退回草稿则清空
func (s *PostRepoImpl) UpdateStatusByIDs(ctx context.Context, ids []uint64, status string, now time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id IN ?", ids).
			Update("status", status).Error; err != nil {
			return err
		}
		if status == model.PostStatusPublished {
			return tx.Model(&model.Post{}).
				Where("id IN ? AND published_at IS NULL", ids).
				Update("published_at", now).Error
		}
		return tx.Model(&model.Post{}).Where("id IN ?", ids).
			Update("published_at", nil).Error
	})
}

func (s *PostRepoImpl) SetFeaturedByIDs(ctx context.Context, ids []uint64, featured bool) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id IN ?", ids).
		Update("is_featured", featured).Error
}

func replacePostTags(tx *gorm.DB, postID uint64, tagIDs []uint64) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]*model.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, &model.PostTag{PostID: postID, TagID: tagID})
	}
	return tx.Create(rows).Error
}
