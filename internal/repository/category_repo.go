package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

// CategoryWithCount 分类及其已发布文章数
type CategoryWithCount struct {
	model.Category
	PostCount int64
}

type CategoryRepo interface {
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	GetByName(ctx context.Context, name string) (*model.Category, error)
	GetByID(ctx context.Context, id uint64) (*model.Category, error)
	ListWithCount(ctx context.Context, onlyNonEmpty bool, orderByCount bool, limit int) ([]*CategoryWithCount, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{
		db: db,
	}
}

func (s *CategoryRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryRepoImpl) GetByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListWithCount 统计只算已发布文章；orderByCount 时按数量降序、名称升序断平
func (s *CategoryRepoImpl) ListWithCount(ctx context.Context, onlyNonEmpty bool, orderByCount bool, limit int) ([]*CategoryWithCount, error) {
	tx := s.db.WithContext(ctx).Model(&model.Category{}).
		Select("categories.*, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.category_id = categories.id AND posts.status = ?", model.PostStatusPublished).
		Group("categories.id")

	if onlyNonEmpty {
		tx = tx.Having("COUNT(posts.id) > 0")
	}
	if orderByCount {
		tx = tx.Order("post_count DESC, categories.name ASC")
	} else {
		tx = tx.Order("categories.name ASC")
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []*CategoryWithCount
	err := tx.Scan(&rows).Error
	return rows, err
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryRepoImpl) UpdateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", category.ID).
		Select("Name", "Slug", "Description", "Icon", "Color").
		Updates(category).Error
}

// DeleteCategory 删除分类前将其下文章的分类置空
func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, id).Error
	})
}
