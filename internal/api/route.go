package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/home", group.HomeHandler.GetHome)
		apiGroup.GET("/categories", group.TaxonomyHandler.ListCategories)
		apiGroup.GET("/tags", group.TaxonomyHandler.ListTags)
		apiGroup.POST("/newsletter/subscribe", group.NewsletterHandler.Subscribe)

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/category/:slug", group.PostHandler.ListByCategory)
				authOptGroup.GET("/tag/:slug", group.PostHandler.ListByTag)
				authOptGroup.GET("/author/:username", group.PostHandler.ListByAuthor)
				authOptGroup.GET("/:slug", group.PostHandler.GetPost)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:slug/like", group.PostActionHandler.ToggleLike)
				authGroup.POST("/:slug/comments", group.PostActionHandler.AddComment)
			}
		}

		// 需要登录 & 拥有 admin 角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			adminGroup.POST("/categories", group.AdminHandler.CreateCategory)
			adminGroup.PUT("/categories/:id", group.AdminHandler.UpdateCategory)
			adminGroup.DELETE("/categories/:id", group.AdminHandler.DeleteCategory)

			adminGroup.POST("/tags", group.AdminHandler.CreateTag)
			adminGroup.PUT("/tags/:id", group.AdminHandler.UpdateTag)
			adminGroup.DELETE("/tags/:id", group.AdminHandler.DeleteTag)

			adminGroup.GET("/posts", group.AdminHandler.ListPosts)
			adminGroup.POST("/posts", group.AdminHandler.CreatePost)
			adminGroup.GET("/posts/:id", group.AdminHandler.GetPost)
			adminGroup.PUT("/posts/:id", group.AdminHandler.UpdatePost)
			adminGroup.DELETE("/posts/:id", group.AdminHandler.DeletePost)
			adminGroup.POST("/posts/publish", group.AdminHandler.PublishPosts)
			adminGroup.POST("/posts/unpublish", group.AdminHandler.UnpublishPosts)
			adminGroup.POST("/posts/feature", group.AdminHandler.FeaturePosts)
			adminGroup.POST("/posts/unfeature", group.AdminHandler.UnfeaturePosts)

			adminGroup.GET("/comments", group.AdminHandler.ListComments)
			adminGroup.POST("/comments/approve", group.AdminHandler.ApproveComments)
			adminGroup.POST("/comments/reject", group.AdminHandler.RejectComments)
			adminGroup.DELETE("/comments/:id", group.AdminHandler.DeleteComment)

			adminGroup.GET("/newsletter", group.AdminHandler.ListSubscribers)
			adminGroup.POST("/newsletter/activate", group.AdminHandler.ActivateSubscribers)
			adminGroup.POST("/newsletter/deactivate", group.AdminHandler.DeactivateSubscribers)
		}
	}

	return r
}
