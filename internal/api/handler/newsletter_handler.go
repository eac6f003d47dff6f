package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterSvc service.NewsletterService
}

func NewNewsletterHandler(newsletterSvc service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterSvc: newsletterSvc,
	}
}

func (s *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.newsletterSvc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
