package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomySvc service.TaxonomyService
}

func NewTaxonomyHandler(taxonomySvc service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomySvc: taxonomySvc,
	}
}

func (s *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := s.taxonomySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := s.taxonomySvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
