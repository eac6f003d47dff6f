package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// TagWithCount 标签及其已发布文章数
type TagWithCount struct {
	model.Tag
	PostCount int64
}

type TagRepo interface {
	GetBySlug(ctx context.Context, slug string) (*model.Tag, error)
	GetByName(ctx context.Context, name string) (*model.Tag, error)
	GetByID(ctx context.Context, id uint64) (*model.Tag, error)
	ListWithCount(ctx context.Context, onlyNonEmpty bool, orderByCount bool, limit int) ([]*TagWithCount, error)
	GetOrCreateTags(ctx context.Context, tags []*model.Tag) ([]*model.Tag, error)
	CreateTag(ctx context.Context, tag *model.Tag) error
	UpdateTag(ctx context.Context, tag *model.Tag) error
	DeleteTag(ctx context.Context, id uint64) error
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) ListWithCount(ctx context.Context, onlyNonEmpty bool, orderByCount bool, limit int) ([]*TagWithCount, error) {
	tx := s.db.WithContext(ctx).Model(&model.Tag{}).
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("LEFT JOIN posts ON posts.id = post_tags.post_id AND posts.status = ?", model.PostStatusPublished).
		Select("tags.*, COUNT(posts.id) AS post_count").
		Group("tags.id")

	if onlyNonEmpty {
		tx = tx.Having("COUNT(posts.id) > 0")
	}
	if orderByCount {
		tx = tx.Order("post_count DESC, tags.name ASC")
	} else {
		tx = tx.Order("tags.name ASC")
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []*TagWithCount
	err := tx.Scan(&rows).Error
	return rows, err
}

// GetOrCreateTags 按名称复用已有标签，未命中则新建；slug 撞到别名标签时原样上抛
func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tags []*model.Tag) ([]*model.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	result := make([]*model.Tag, 0, len(tags))
	for _, tag := range tags {
		var existing model.Tag
		err := s.db.WithContext(ctx).Where("name = ?", tag.Name).First(&existing).Error
		if err == nil {
			result = append(result, &existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
			// 并发下同名标签可能刚被建好，按名称回查一次
			var raced model.Tag
			if s.db.WithContext(ctx).Where("name = ?", tag.Name).First(&raced).Error == nil {
				result = append(result, &raced)
				continue
			}
			return nil, err
		}
		result = append(result, tag)
	}
	return result, nil
}

func (s *tagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *tagRepoImpl) UpdateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", tag.ID).
		Select("Name", "Slug").
		Updates(tag).Error
}

func (s *tagRepoImpl) DeleteTag(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, id).Error
	})
}
