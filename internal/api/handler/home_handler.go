package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	homeSvc service.HomeService
}

func NewHomeHandler(homeSvc service.HomeService) *HomeHandler {
	return &HomeHandler{
		homeSvc: homeSvc,
	}
}

func (s *HomeHandler) GetHome(c *gin.Context) {
	home, err := s.homeSvc.GetHome(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, home)
}
