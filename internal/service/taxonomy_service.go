package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

// TaxonomyService 分类/标签目录页的汇总视图
type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
}

type taxonomyServiceImpl struct {
	categoryRepo repository.CategoryRepo
	tagRepo      repository.TagRepo
}

func NewTaxonomyService(categoryRepo repository.CategoryRepo, tagRepo repository.TagRepo) TaxonomyService {
	return &taxonomyServiceImpl{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *taxonomyServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	rows, err := s.categoryRepo.ListWithCount(ctx, false, false, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.CategoryDTO, 0, len(rows))
	for _, row := range rows {
		item := &dto.CategoryDTO{}
		_ = copier.Copy(item, &row.Category)
		item.PostCount = row.PostCount
		items = append(items, item)
	}
	return items, nil
}

func (s *taxonomyServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	rows, err := s.tagRepo.ListWithCount(ctx, false, false, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.TagDTO, 0, len(rows))
	for _, row := range rows {
		item := &dto.TagDTO{}
		_ = copier.Copy(item, &row.Tag)
		item.PostCount = row.PostCount
		items = append(items, item)
	}
	return items, nil
}
