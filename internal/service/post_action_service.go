package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID uint64, slug string) (*dto.LikeResultDTO, error)
	AddComment(ctx context.Context, userID uint64, slug string, req *dto.CommentCreateDTO) (*dto.CommentResultDTO, error)
}

type postActionServiceImpl struct {
	postRepo   repository.PostRepo
	actionRepo repository.PostActionRepo
	userRepo   repository.UserRepo
}

func NewPostActionService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	userRepo repository.UserRepo,
) PostActionService {
	return &postActionServiceImpl{
		postRepo:   postRepo,
		actionRepo: actionRepo,
		userRepo:   userRepo,
	}
}

// ToggleLike 切换语义：已点赞则取消，未点赞则添加；重复提交会再翻转一次
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, userID uint64, slug string) (*dto.LikeResultDTO, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	liked, err := s.actionRepo.CheckLikeExists(ctx, userID, post.ID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err = s.actionRepo.DeleteLike(ctx, userID, post.ID); err != nil {
			return nil, err
		}
		liked = false
	} else {
		err = s.actionRepo.CreateLike(ctx, &model.PostLike{
			UserID:    userID,
			PostID:    post.ID,
			CreatedAt: time.Now(),
		})
		if err != nil && !isDuplicateKeyErr(err) {
			return nil, err
		}
		liked = true
	}

	count, err := s.actionRepo.GetLikeCountByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResultDTO{Liked: liked, LikeCount: count}, nil
}

func (s *postActionServiceImpl) AddComment(ctx context.Context, userID uint64, slug string, req *dto.CommentCreateDTO) (*dto.CommentResultDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrCommentEmpty
	}

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.actionRepo.GetCommentByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}
		// 父评论必须属于同一篇文章
		if parent.PostID != post.ID {
			return nil, ErrCommentNotFound
		}
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:     post.ID,
		AuthorID:   userID,
		Content:    req.Content,
		ParentID:   req.ParentID,
		IsApproved: true,
	}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResultDTO{
		AuthorName: author.DisplayName(),
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt.Format(consts.CommentTimeLayout),
	}, nil
}
