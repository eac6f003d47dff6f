package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// AdminService 管理端逐实体的显式 CRUD 与批量操作
type AdminService interface {
	CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) error
	UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryBaseDTO) error
	DeleteCategory(ctx context.Context, id uint64) error

	CreateTag(ctx context.Context, req *dto.TagBaseDTO) error
	UpdateTag(ctx context.Context, id uint64, req *dto.TagBaseDTO) error
	DeleteTag(ctx context.Context, id uint64) error

	CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) error
	UpdatePost(ctx context.Context, id uint64, req *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, id uint64) error
	GetPost(ctx context.Context, id uint64) (*dto.AdminPostDTO, error)
	ListPosts(ctx context.Context, page int) (*dto.PostPageDTO, error)
	UpdatePostStatus(ctx context.Context, ids []uint64, status string) error
	SetPostsFeatured(ctx context.Context, ids []uint64, featured bool) error

	SetCommentsApproved(ctx context.Context, ids []uint64, approved bool) error
	DeleteComment(ctx context.Context, id uint64) error
	ListComments(ctx context.Context, page int) (*dto.AdminCommentPageDTO, error)

	SetSubscribersActive(ctx context.Context, ids []uint64, active bool) error
	ListSubscribers(ctx context.Context, page int) (*dto.NewsletterPageDTO, error)
}

type adminServiceImpl struct {
	postRepo       repository.PostRepo
	categoryRepo   repository.CategoryRepo
	tagRepo        repository.TagRepo
	actionRepo     repository.PostActionRepo
	newsletterRepo repository.NewsletterRepo
}

func NewAdminService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	tagRepo repository.TagRepo,
	actionRepo repository.PostActionRepo,
	newsletterRepo repository.NewsletterRepo,
) AdminService {
	return &adminServiceImpl{
		postRepo:       postRepo,
		categoryRepo:   categoryRepo,
		tagRepo:        tagRepo,
		actionRepo:     actionRepo,
		newsletterRepo: newsletterRepo,
	}
}

// deriveSlug slug 缺省时由名称推导；冲突直接报错，不做静默加后缀
func deriveSlug(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return util.Slugify(name)
}

// classifyCategoryConflict 分类有 name 和 slug 两条唯一约束，
// 翻译后的冲突哨兵不带约束名，按名称回查确定冲突来源
func (s *adminServiceImpl) classifyCategoryConflict(ctx context.Context, err error, name string, selfID uint64) error {
	if err == nil || !isDuplicateKeyErr(err) {
		return err
	}
	holder, lookupErr := s.categoryRepo.GetByName(ctx, name)
	if lookupErr == nil && holder.ID != selfID {
		return ErrNameExists
	}
	return ErrSlugExists
}

func (s *adminServiceImpl) classifyTagConflict(ctx context.Context, err error, name string, selfID uint64) error {
	if err == nil || !isDuplicateKeyErr(err) {
		return err
	}
	holder, lookupErr := s.tagRepo.GetByName(ctx, name)
	if lookupErr == nil && holder.ID != selfID {
		return ErrNameExists
	}
	return ErrSlugExists
}

func (s *adminServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) error {
	category := &model.Category{
		Name:        req.Name,
		Slug:        deriveSlug(req.Slug, req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if category.Color == "" {
		category.Color = "blue"
	}
	return s.classifyCategoryConflict(ctx, s.categoryRepo.CreateCategory(ctx, category), category.Name, 0)
}

func (s *adminServiceImpl) UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryBaseDTO) error {
	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	existing.Name = req.Name
	existing.Slug = deriveSlug(req.Slug, req.Name)
	existing.Description = req.Description
	existing.Icon = req.Icon
	if req.Color != "" {
		existing.Color = req.Color
	}
	return s.classifyCategoryConflict(ctx, s.categoryRepo.UpdateCategory(ctx, existing), existing.Name, existing.ID)
}

func (s *adminServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.DeleteCategory(ctx, id)
}

func (s *adminServiceImpl) CreateTag(ctx context.Context, req *dto.TagBaseDTO) error {
	tag := &model.Tag{
		Name: req.Name,
		Slug: deriveSlug(req.Slug, req.Name),
	}
	return s.classifyTagConflict(ctx, s.tagRepo.CreateTag(ctx, tag), tag.Name, 0)
}

func (s *adminServiceImpl) UpdateTag(ctx context.Context, id uint64, req *dto.TagBaseDTO) error {
	existing, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	existing.Name = req.Name
	existing.Slug = deriveSlug(req.Slug, req.Name)
	return s.classifyTagConflict(ctx, s.tagRepo.UpdateTag(ctx, existing), existing.Name, existing.ID)
}

func (s *adminServiceImpl) DeleteTag(ctx context.Context, id uint64) error {
	if _, err := s.tagRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return s.tagRepo.DeleteTag(ctx, id)
}

func (s *adminServiceImpl) resolveTagIDs(ctx context.Context, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tags := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &model.Tag{Name: name, Slug: util.Slugify(name)})
	}
	persisted, err := s.tagRepo.GetOrCreateTags(ctx, tags)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(persisted))
	for _, tag := range persisted {
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func (s *adminServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) error {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.TagNames)
	if err != nil {
		return translateUnique(err)
	}

	post := &model.Post{
		Title:           req.Title,
		Slug:            deriveSlug(req.Slug, req.Title),
		AuthorID:        authorID,
		CategoryID:      req.CategoryID,
		Excerpt:         req.Excerpt,
		ContentType:     req.ContentType,
		ContentHTML:     req.ContentHTML,
		ContentMarkdown: req.ContentMarkdown,
		Status:          req.Status,
		IsFeatured:      req.IsFeatured,
	}
	if post.ContentType == "" {
		post.ContentType = model.ContentTypeHTML
	}
	if post.Status == "" {
		post.Status = model.PostStatusDraft
	}
	// 首次以已发布状态落库即打发布时间戳
	if post.Status == model.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	return translateUnique(s.postRepo.CreatePost(ctx, post, tagIDs))
}

func (s *adminServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.PostBaseDTO) error {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if req.CategoryID != nil {
		if _, err = s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.TagNames)
	if err != nil {
		return translateUnique(err)
	}

	existing.Title = req.Title
	existing.Slug = deriveSlug(req.Slug, req.Title)
	existing.CategoryID = req.CategoryID
	existing.Excerpt = req.Excerpt
	if req.ContentType != "" {
		existing.ContentType = req.ContentType
	}
	existing.ContentHTML = req.ContentHTML
	existing.ContentMarkdown = req.ContentMarkdown
	existing.IsFeatured = req.IsFeatured

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	existing.Status = status
	// 发布时间戳只打一次；退回草稿则清空
	if status == model.PostStatusPublished {
		if existing.PublishedAt == nil {
			now := time.Now()
			existing.PublishedAt = &now
		}
	} else {
		existing.PublishedAt = nil
	}

	return translateUnique(s.postRepo.UpdatePost(ctx, existing, tagIDs))
}

func (s *adminServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.postRepo.DeletePost(ctx, id)
}

func (s *adminServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.AdminPostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	likeCount, err := s.actionRepo.GetLikeCountByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	item := &dto.AdminPostDTO{PostDTO: *convertPost(post, likeCount)}
	item.ContentHTML = post.ContentHTML
	item.ContentMarkdown = post.ContentMarkdown
	return item, nil
}

func (s *adminServiceImpl) ListPosts(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * consts.AdminPageSize
	posts, total, err := s.postRepo.ListAll(ctx, offset, consts.AdminPageSize)
	if err != nil {
		return nil, err
	}

	items, err := convertPosts(ctx, s.actionRepo, posts)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{
		Items:      items,
		Page:       page,
		PageSize:   consts.AdminPageSize,
		TotalCount: total,
	}, nil
}

func (s *adminServiceImpl) UpdatePostStatus(ctx context.Context, ids []uint64, status string) error {
	if status != model.PostStatusDraft && status != model.PostStatusPublished {
		return ErrParamInvalid
	}
	return s.postRepo.UpdateStatusByIDs(ctx, ids, status, time.Now())
}

func (s *adminServiceImpl) SetPostsFeatured(ctx context.Context, ids []uint64, featured bool) error {
	return s.postRepo.SetFeaturedByIDs(ctx, ids, featured)
}

func (s *adminServiceImpl) SetCommentsApproved(ctx context.Context, ids []uint64, approved bool) error {
	return s.actionRepo.SetCommentsApproved(ctx, ids, approved)
}

func (s *adminServiceImpl) DeleteComment(ctx context.Context, id uint64) error {
	if _, err := s.actionRepo.GetCommentByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.actionRepo.DeleteComment(ctx, id)
}

func (s *adminServiceImpl) ListComments(ctx context.Context, page int) (*dto.AdminCommentPageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * consts.AdminPageSize
	comments, total, err := s.actionRepo.ListComments(ctx, offset, consts.AdminPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminCommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, &dto.AdminCommentDTO{
			ID:         comment.ID,
			PostID:     comment.PostID,
			AuthorName: comment.Author.DisplayName(),
			Content:    comment.Content,
			IsApproved: comment.IsApproved,
			CreatedAt:  comment.CreatedAt.Format(dateTimeLayout),
		})
	}
	return &dto.AdminCommentPageDTO{
		Items:      items,
		Page:       page,
		PageSize:   consts.AdminPageSize,
		TotalCount: total,
	}, nil
}

func (s *adminServiceImpl) SetSubscribersActive(ctx context.Context, ids []uint64, active bool) error {
	return s.newsletterRepo.SetActiveByIDs(ctx, ids, active)
}

func (s *adminServiceImpl) ListSubscribers(ctx context.Context, page int) (*dto.NewsletterPageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * consts.AdminPageSize
	subs, total, err := s.newsletterRepo.ListSubscribers(ctx, offset, consts.AdminPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NewsletterDTO, 0, len(subs))
	for _, sub := range subs {
		item := &dto.NewsletterDTO{}
		_ = copier.Copy(item, sub)
		item.SubscribedAt = sub.SubscribedAt.Format(dateTimeLayout)
		items = append(items, item)
	}
	return &dto.NewsletterPageDTO{
		Items:      items,
		Page:       page,
		PageSize:   consts.AdminPageSize,
		TotalCount: total,
	}, nil
}
