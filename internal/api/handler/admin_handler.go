package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

func (s *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.CreateCategory(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CategoryBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.UpdateCategory(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) CreateTag(c *gin.Context) {
	var req dto.TagBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.CreateTag(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UpdateTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TagBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.UpdateTag(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.DeleteTag(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.CreatePost(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.UpdatePost(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) GetPost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.adminSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := s.adminSvc.ListPosts(c.Request.Context(), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *AdminHandler) bulkPostStatus(c *gin.Context, status string) {
	var req dto.BulkIDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.UpdatePostStatus(c.Request.Context(), req.IDs, status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) PublishPosts(c *gin.Context) {
	s.bulkPostStatus(c, model.PostStatusPublished)
}

func (s *AdminHandler) UnpublishPosts(c *gin.Context) {
	s.bulkPostStatus(c, model.PostStatusDraft)
}

func (s *AdminHandler) bulkPostFeatured(c *gin.Context, featured bool) {
	var req dto.BulkIDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.SetPostsFeatured(c.Request.Context(), req.IDs, featured); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) FeaturePosts(c *gin.Context) {
	s.bulkPostFeatured(c, true)
}

func (s *AdminHandler) UnfeaturePosts(c *gin.Context) {
	s.bulkPostFeatured(c, false)
}

func (s *AdminHandler) bulkCommentApproved(c *gin.Context, approved bool) {
	var req dto.BulkIDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.SetCommentsApproved(c.Request.Context(), req.IDs, approved); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ApproveComments(c *gin.Context) {
	s.bulkCommentApproved(c, true)
}

func (s *AdminHandler) RejectComments(c *gin.Context) {
	s.bulkCommentApproved(c, false)
}

func (s *AdminHandler) DeleteComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.DeleteComment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ListComments(c *gin.Context) {
	comments, err := s.adminSvc.ListComments(c.Request.Context(), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *AdminHandler) bulkSubscriberActive(c *gin.Context, active bool) {
	var req dto.BulkIDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.adminSvc.SetSubscribersActive(c.Request.Context(), req.IDs, active); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ActivateSubscribers(c *gin.Context) {
	s.bulkSubscriberActive(c, true)
}

func (s *AdminHandler) DeactivateSubscribers(c *gin.Context) {
	s.bulkSubscriberActive(c, false)
}

func (s *AdminHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := s.adminSvc.ListSubscribers(c.Request.Context(), parsePage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subscribers)
}
