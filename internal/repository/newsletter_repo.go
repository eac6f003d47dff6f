package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type NewsletterRepo interface {
	GetByEmail(ctx context.Context, email string) (*model.Newsletter, error)
	CreateSubscriber(ctx context.Context, sub *model.Newsletter) error
	SetActiveByIDs(ctx context.Context, ids []uint64, active bool) error
	CountActive(ctx context.Context) (int64, error)
	ListSubscribers(ctx context.Context, offset, limit int) ([]*model.Newsletter, int64, error)
}

type NewsletterRepoImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepo {
	return &NewsletterRepoImpl{
		db: db,
	}
}

// GetByEmail 未找到时返回 (nil, nil)，由调用方决定创建还是激活
func (s *NewsletterRepoImpl) GetByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	var sub model.Newsletter
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *NewsletterRepoImpl) CreateSubscriber(ctx context.Context, sub *model.Newsletter) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *NewsletterRepoImpl) SetActiveByIDs(ctx context.Context, ids []uint64, active bool) error {
	return s.db.WithContext(ctx).Model(&model.Newsletter{}).
		Where("id IN ?", ids).
		Update("is_active", active).Error
}

func (s *NewsletterRepoImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Newsletter{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (s *NewsletterRepoImpl) ListSubscribers(ctx context.Context, offset, limit int) ([]*model.Newsletter, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Newsletter{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var subs []*model.Newsletter
	err := s.db.WithContext(ctx).
		Order("subscribed_at DESC").
		Offset(offset).Limit(limit).
		Find(&subs).Error
	return subs, count, err
}
