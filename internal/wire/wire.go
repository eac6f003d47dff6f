package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepo(db)
	actionRepo := repository.NewPostActionRepo(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	postService := service.NewPostService(postRepo, categoryRepo, tagRepo, userRepo, actionRepo)
	homeService := service.NewHomeService(postRepo, categoryRepo, tagRepo, newsletterRepo, actionRepo)
	taxonomyService := service.NewTaxonomyService(categoryRepo, tagRepo)
	postActionService := service.NewPostActionService(postRepo, actionRepo, userRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)
	adminService := service.NewAdminService(postRepo, categoryRepo, tagRepo, actionRepo, newsletterRepo)

	handlers := &api.HandlersGroup{
		HomeHandler:       handler.NewHomeHandler(homeService),
		PostHandler:       handler.NewPostHandler(postService),
		TaxonomyHandler:   handler.NewTaxonomyHandler(taxonomyService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		NewsletterHandler: handler.NewNewsletterHandler(newsletterService),
		AdminHandler:      handler.NewAdminHandler(adminService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
