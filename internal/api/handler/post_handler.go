package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// parsePage 非法或缺失的页码一律按第 1 页处理
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPublished(c.Request.Context(), c.Query("q"), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListByCategory(c *gin.Context) {
	result, err := s.postSvc.ListByCategory(c.Request.Context(), c.Param("slug"), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) ListByTag(c *gin.Context) {
	result, err := s.postSvc.ListByTag(c.Request.Context(), c.Param("slug"), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) ListByAuthor(c *gin.Context) {
	result, err := s.postSvc.ListByAuthor(c.Request.Context(), c.Param("username"), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	detail, err := s.postSvc.GetPostDetail(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}
