package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type HomeService interface {
	GetHome(ctx context.Context) (*dto.HomeDTO, error)
}

type homeServiceImpl struct {
	postRepo       repository.PostRepo
	categoryRepo   repository.CategoryRepo
	tagRepo        repository.TagRepo
	newsletterRepo repository.NewsletterRepo
	actionRepo     repository.PostActionRepo
}

func NewHomeService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	tagRepo repository.TagRepo,
	newsletterRepo repository.NewsletterRepo,
	actionRepo repository.PostActionRepo,
) HomeService {
	return &homeServiceImpl{
		postRepo:       postRepo,
		categoryRepo:   categoryRepo,
		tagRepo:        tagRepo,
		newsletterRepo: newsletterRepo,
		actionRepo:     actionRepo,
	}
}

// GetHome 首页聚合：精选、最新、分类、标签与统计一次取齐
func (s *homeServiceImpl) GetHome(ctx context.Context) (*dto.HomeDTO, error) {
	featured, err := s.postRepo.ListFeatured(ctx, consts.HomeFeaturedLimit)
	if err != nil {
		return nil, err
	}
	featuredDTOs, err := convertPosts(ctx, s.actionRepo, featured)
	if err != nil {
		return nil, err
	}

	latest, err := s.postRepo.ListLatest(ctx, consts.HomeGridSize)
	if err != nil {
		return nil, err
	}
	latestDTOs, err := convertPosts(ctx, s.actionRepo, latest)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListWithCount(ctx, true, true, consts.HomeCategoryLimit)
	if err != nil {
		return nil, err
	}
	categoryDTOs := make([]*dto.CategoryDTO, 0, len(categories))
	for _, row := range categories {
		item := &dto.CategoryDTO{}
		_ = copier.Copy(item, &row.Category)
		item.PostCount = row.PostCount
		categoryDTOs = append(categoryDTOs, item)
	}

	tags, err := s.tagRepo.ListWithCount(ctx, true, true, consts.HomeTagLimit)
	if err != nil {
		return nil, err
	}
	tagDTOs := make([]*dto.TagDTO, 0, len(tags))
	for _, row := range tags {
		item := &dto.TagDTO{}
		_ = copier.Copy(item, &row.Tag)
		item.PostCount = row.PostCount
		tagDTOs = append(tagDTOs, item)
	}

	stats, err := s.buildStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HomeDTO{
		Featured:   featuredDTOs,
		Latest:     latestDTOs,
		Categories: categoryDTOs,
		Tags:       tagDTOs,
		Stats:      stats,
	}, nil
}

func (s *homeServiceImpl) buildStats(ctx context.Context) (*dto.HomeStatsDTO, error) {
	totalPosts, err := s.postRepo.CountPublished(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.postRepo.SumPublishedViews(ctx)
	if err != nil {
		return nil, err
	}
	totalAuthors, err := s.postRepo.CountPublishedAuthors(ctx)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.newsletterRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	// 时间窗口在应用侧计算，SQL 保持可移植
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	postsThisMonth, err := s.postRepo.CountPublishedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	trendingSince := now.AddDate(0, 0, -consts.TrendingDays)
	trendingIDs, err := s.postRepo.TrendingIDs(ctx, trendingSince, consts.TrendingLimit)
	if err != nil {
		return nil, err
	}

	return &dto.HomeStatsDTO{
		TotalPosts:        totalPosts,
		TotalViews:        totalViews,
		TotalAuthors:      totalAuthors,
		ActiveSubscribers: subscribers,
		PostsThisMonth:    postsThisMonth,
		TrendingIDs:       trendingIDs,
	}, nil
}
