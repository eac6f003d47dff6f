package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"strings"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*dto.SubscribeResultDTO, error)
}

type newsletterServiceImpl struct {
	newsletterRepo repository.NewsletterRepo
}

func NewNewsletterService(newsletterRepo repository.NewsletterRepo) NewsletterService {
	return &newsletterServiceImpl{
		newsletterRepo: newsletterRepo,
	}
}

// Subscribe 不存在则创建，失活则重新激活；已订阅是业务结果而非错误
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*dto.SubscribeResultDTO, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !util.IsEmail(email) {
		return nil, ErrEmailInvalid
	}

	existing, err := s.newsletterRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		sub := &model.Newsletter{Email: email, IsActive: true}
		if err = s.newsletterRepo.CreateSubscriber(ctx, sub); err != nil {
			if isDuplicateKeyErr(err) {
				return &dto.SubscribeResultDTO{Success: false, Message: "该邮箱已订阅！"}, nil
			}
			return nil, err
		}
		return &dto.SubscribeResultDTO{Success: true, Message: "订阅成功！"}, nil
	}

	if existing.IsActive {
		return &dto.SubscribeResultDTO{Success: false, Message: "该邮箱已订阅！"}, nil
	}

	if err = s.newsletterRepo.SetActiveByIDs(ctx, []uint64{existing.ID}, true); err != nil {
		return nil, err
	}
	return &dto.SubscribeResultDTO{Success: true, Message: "已重新激活订阅！"}, nil
}
