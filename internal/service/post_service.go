package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const dateTimeLayout = "2006-01-02 15:04:05"

type PostService interface {
	ListPublished(ctx context.Context, keyword string, page int) (*dto.PostPageDTO, error)
	ListByCategory(ctx context.Context, slug string, page int) (*dto.CategoryPostsDTO, error)
	ListByTag(ctx context.Context, slug string, page int) (*dto.TagPostsDTO, error)
	ListByAuthor(ctx context.Context, username string, page int) (*dto.AuthorPostsDTO, error)
	GetPostDetail(ctx context.Context, viewerID uint64, slug string) (*dto.PostDetailDTO, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	tagRepo      repository.TagRepo
	userRepo     repository.UserRepo
	actionRepo   repository.PostActionRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	tagRepo repository.TagRepo,
	userRepo repository.UserRepo,
	actionRepo repository.PostActionRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		actionRepo:   actionRepo,
	}
}

// clampPage 非法页码按第 1 页处理，越界页码收敛到最近的有效页
func clampPage(page int, total int64, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}
	return page, (page - 1) * pageSize
}

func (s *postServiceImpl) listPage(ctx context.Context, q *repository.PostQuery, page int) (*dto.PostPageDTO, error) {
	total, err := s.postRepo.CountPublished(ctx, q)
	if err != nil {
		return nil, err
	}

	page, offset := clampPage(page, total, consts.ListPageSize)
	posts, err := s.postRepo.ListPublished(ctx, q, offset, consts.ListPageSize)
	if err != nil {
		return nil, err
	}

	items, err := s.toPostDTOs(ctx, posts)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{
		Items:      items,
		Page:       page,
		PageSize:   consts.ListPageSize,
		TotalCount: total,
	}, nil
}

func (s *postServiceImpl) ListPublished(ctx context.Context, keyword string, page int) (*dto.PostPageDTO, error) {
	return s.listPage(ctx, &repository.PostQuery{Keyword: keyword}, page)
}

func (s *postServiceImpl) ListByCategory(ctx context.Context, slug string, page int) (*dto.CategoryPostsDTO, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	posts, err := s.listPage(ctx, &repository.PostQuery{CategoryID: category.ID}, page)
	if err != nil {
		return nil, err
	}

	var categoryDTO dto.CategoryDTO
	_ = copier.Copy(&categoryDTO, category)
	categoryDTO.PostCount = posts.TotalCount

	return &dto.CategoryPostsDTO{Category: &categoryDTO, Posts: posts}, nil
}

func (s *postServiceImpl) ListByTag(ctx context.Context, slug string, page int) (*dto.TagPostsDTO, error) {
	tag, err := s.tagRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	posts, err := s.listPage(ctx, &repository.PostQuery{TagID: tag.ID}, page)
	if err != nil {
		return nil, err
	}

	var tagDTO dto.TagDTO
	_ = copier.Copy(&tagDTO, tag)
	tagDTO.PostCount = posts.TotalCount

	return &dto.TagPostsDTO{Tag: &tagDTO, Posts: posts}, nil
}

func (s *postServiceImpl) ListByAuthor(ctx context.Context, username string, page int) (*dto.AuthorPostsDTO, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	posts, err := s.listPage(ctx, &repository.PostQuery{AuthorID: author.ID}, page)
	if err != nil {
		return nil, err
	}

	authorDTO := &dto.AuthorDTO{
		ID:       author.ID,
		Username: author.Username,
		Name:     author.DisplayName(),
		Bio:      author.Bio,
		Website:  author.Website,
		Twitter:  author.Twitter,
		Github:   author.Github,
		Linkedin: author.Linkedin,
		Location: author.Location,
	}

	return &dto.AuthorPostsDTO{Author: authorDTO, Posts: posts}, nil
}

// GetPostDetail 阅读计数尽力而为：自增失败只记日志，不影响读取
func (s *postServiceImpl) GetPostDetail(ctx context.Context, viewerID uint64, slug string) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err = s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		log.WarnContext(ctx, "increment views failed", "post_id", post.ID, "err", err)
	} else {
		post.Views++
	}

	items, err := s.toPostDTOs(ctx, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	detail := &dto.PostDetailDTO{PostDTO: *items[0]}
	detail.Content = post.ActiveContent()

	comments, err := s.actionRepo.GetApprovedCommentsByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	detail.Comments = buildCommentTree(comments)

	if post.CategoryID != nil {
		related, err := s.postRepo.ListRelated(ctx, *post.CategoryID, post.ID, consts.RelatedLimit)
		if err != nil {
			return nil, err
		}
		detail.Related, err = s.toPostDTOs(ctx, related)
		if err != nil {
			return nil, err
		}
	}

	if viewerID > 0 {
		liked, err := s.actionRepo.CheckLikeExists(ctx, viewerID, post.ID)
		if err != nil {
			return nil, err
		}
		detail.Liked = liked
	}

	return detail, nil
}

// toPostDTOs 批量转换并补齐点赞数等派生字段
func (s *postServiceImpl) toPostDTOs(ctx context.Context, posts []*model.Post) ([]*dto.PostDTO, error) {
	return convertPosts(ctx, s.actionRepo, posts)
}

func convertPosts(ctx context.Context, actionRepo repository.PostActionRepo, posts []*model.Post) ([]*dto.PostDTO, error) {
	ids := make([]uint64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	likeCounts, err := actionRepo.GetLikeCountsByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, convertPost(post, likeCounts[post.ID]))
	}
	return items, nil
}

func convertPost(post *model.Post, likeCount int64) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.ReadingTime = post.ReadingTime()
	item.LikeCount = likeCount
	item.CreatedAt = post.CreatedAt.Format(dateTimeLayout)
	if post.PublishedAt != nil {
		item.PublishedAt = post.PublishedAt.Format(dateTimeLayout)
	}
	item.AuthorID = post.AuthorID
	item.AuthorUsername = post.Author.Username
	item.AuthorName = post.Author.DisplayName()
	if post.Category != nil {
		item.Category = &dto.CategoryDTO{}
		_ = copier.Copy(item.Category, post.Category)
	}
	item.Tags = make([]*dto.TagDTO, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tagDTO := &dto.TagDTO{}
		_ = copier.Copy(tagDTO, tag)
		item.Tags = append(item.Tags, tagDTO)
	}
	return item
}

// buildCommentTree 由平铺的已审核评论组装嵌套结构，只保留一级评论为根
func buildCommentTree(comments []*model.Comment) []*dto.CommentDTO {
	nodes := make(map[uint64]*dto.CommentDTO, len(comments))
	roots := make([]*dto.CommentDTO, 0)

	for _, comment := range comments {
		nodes[comment.ID] = &dto.CommentDTO{
			ID:         comment.ID,
			AuthorName: comment.Author.DisplayName(),
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt.Format(consts.CommentTimeLayout),
			Replies:    make([]*dto.CommentDTO, 0),
		}
	}
	for _, comment := range comments {
		node := nodes[comment.ID]
		if comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*comment.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}
	return roots
}
