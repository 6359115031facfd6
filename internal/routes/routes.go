package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/handler"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/pkg/jwt"
)

// Handlers groups everything Setup wires into the route table
type Handlers struct {
	Auth         *handler.AuthHandler
	Post         *handler.PostHandler
	Page         *handler.PageHandler
	Product      *handler.ProductHandler
	Organization *handler.OrganizationHandler
	Revision     *handler.RevisionHandler
	Scheduling   *handler.SchedulingHandler
	Cron         *handler.CronHandler
}

// Setup configures all API routes
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager, evaluator auth.Evaluator) {
	api := router.Group("/api/v1")

	// Authentication (no auth required for login)
	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.Auth.Login)
	authGroup.GET("/me", middleware.JWTAuth(jwtManager), h.Auth.Me)

	authed := api.Group("", middleware.JWTAuth(jwtManager))

	// Posts
	posts := authed.Group("/posts")
	posts.GET("", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionView), h.Post.List)
	posts.GET("/:id", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionView), h.Post.Get)
	posts.POST("", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionCreate), h.Post.Create)
	posts.PUT("/:id", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionEdit), h.Post.Update)
	posts.DELETE("/:id", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionDelete), h.Post.Delete)
	posts.POST("/:id/publish", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionPublish), h.Post.Publish)
	posts.POST("/:id/archive", middleware.RequirePermission(evaluator, auth.ResourcePosts, auth.ActionEdit), h.Post.Archive)

	// Pages
	pages := authed.Group("/pages")
	pages.GET("", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionView), h.Page.List)
	pages.GET("/:id", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionView), h.Page.Get)
	pages.POST("", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionCreate), h.Page.Create)
	pages.PUT("/:id", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionEdit), h.Page.Update)
	pages.DELETE("/:id", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionDelete), h.Page.Delete)
	pages.POST("/:id/publish", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionPublish), h.Page.Publish)
	pages.POST("/:id/archive", middleware.RequirePermission(evaluator, auth.ResourcePages, auth.ActionEdit), h.Page.Archive)

	// Products
	products := authed.Group("/products")
	products.GET("", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionView), h.Product.List)
	products.GET("/:id", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionView), h.Product.Get)
	products.POST("", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionCreate), h.Product.Create)
	products.PUT("/:id", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionEdit), h.Product.Update)
	products.DELETE("/:id", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionDelete), h.Product.Delete)
	// "publish" on a product lands it in the active status
	products.POST("/:id/publish", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionPublish), h.Product.Activate)
	products.POST("/:id/archive", middleware.RequirePermission(evaluator, auth.ResourceProducts, auth.ActionEdit), h.Product.Archive)

	// Organizations
	orgs := authed.Group("/organizations")
	orgs.GET("/me", middleware.RequirePermission(evaluator, auth.ResourceOrganizations, auth.ActionView), h.Organization.Me)
	orgs.DELETE("/:id/revisions", middleware.RequirePermission(evaluator, auth.ResourceOrganizations, auth.ActionDelete), h.Organization.PurgeRevisions)

	// Revisions — permission resource depends on the revision's content
	// type, so the handlers authorize internally
	revisions := authed.Group("/revisions")
	revisions.GET("", h.Revision.List)
	revisions.GET("/:id", h.Revision.Get)
	revisions.POST("/:id/restore", h.Revision.Restore)

	// Scheduling
	scheduled := authed.Group("/scheduled")
	scheduled.GET("/upcoming", h.Scheduling.Upcoming)
	scheduled.POST("", h.Scheduling.Schedule)
	scheduled.DELETE("", h.Scheduling.Unschedule)

	// External time trigger; both methods behave identically
	api.GET("/cron/publish-scheduled", h.Cron.PublishScheduled)
	api.POST("/cron/publish-scheduled", h.Cron.PublishScheduled)
}
