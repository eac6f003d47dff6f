package api

import "Inkwell/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	HomeHandler       *handler.HomeHandler
	PostHandler       *handler.PostHandler
	TaxonomyHandler   *handler.TaxonomyHandler
	PostActionHandler *handler.PostActionHandler
	NewsletterHandler *handler.NewsletterHandler
	AdminHandler      *handler.AdminHandler
}
