package dto

// SubscribeDTO 订阅请求
type SubscribeDTO struct {
	Email string `json:"email" binding:"required"`
}

// SubscribeResultDTO 订阅结果，已订阅属于业务结果而非错误
type SubscribeResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewsletterDTO 订阅记录（管理端）
type NewsletterDTO struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
	IsActive     bool   `json:"is_active"`
}
