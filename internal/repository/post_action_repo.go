package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.PostLike) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	GetApprovedCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	ListComments(ctx context.Context, offset, limit int) ([]*model.Comment, int64, error)
	SetCommentsApproved(ctx context.Context, ids []uint64, approved bool) error
	DeleteComment(ctx context.Context, commentID uint64) error
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) CreateLike(ctx context.Context, like *model.PostLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *PostActionRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLike{}).Error
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type likeRow struct {
		PostID uint64
		Count  int64
	}
	var rows []likeRow
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostActionRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetApprovedCommentsByPostID 返回已审核评论，按创建时间升序，树由 service 组装
func (s *PostActionRepoImpl) GetApprovedCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND is_approved = ?", postID, true).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (s *PostActionRepoImpl) ListComments(ctx context.Context, offset, limit int) ([]*model.Comment, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	return comments, count, err
}

func (s *PostActionRepoImpl) SetCommentsApproved(ctx context.Context, ids []uint64, approved bool) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id IN ?", ids).
		Update("is_approved", approved).Error
}

// DeleteComment 逐层收集子评论后整体删除，保证任意深度的级联
func (s *PostActionRepoImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := []uint64{commentID}
		frontier := []uint64{commentID}
		for len(frontier) > 0 {
			var children []uint64
			if err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			all = append(all, children...)
			frontier = children
		}
		return tx.Delete(&model.Comment{}, "id IN ?", all).Error
	})
}
