package app

import (
	"level_tracker_backend/docs"
	"level_tracker_backend/internal/middleware"
	"level_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公开目录
	a.registerPublicRoutes(router, c)

	// 2. 管理端（只读部署不注册）
	if c.moderator != nil {
		a.registerModeratorRoutes(router, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/levels", c.catalog.ListLevels)
		public.GET("/levels/lookup", c.catalog.Lookup)
		public.GET("/levels/:id", c.catalog.GetLevel)
	}
}

func (a *App) registerModeratorRoutes(router *gin.Engine, c *controllers) {
	moderator := router.Group("/api/moderator")
	moderator.Use(middleware.NoStore())
	{
		moderator.GET("/levels", c.moderator.ListLevels)
		moderator.POST("/levels", c.moderator.CreateLevel)
		moderator.PUT("/levels/:index", c.moderator.UpdateLevel)
		moderator.DELETE("/levels/:index", c.moderator.DeleteLevel)
		moderator.POST("/levels/:index/copies", c.moderator.AddCopy)
		moderator.PUT("/levels/:index/copies/:copyIndex", c.moderator.UpdateCopy)
		moderator.DELETE("/levels/:index/copies/:copyIndex", c.moderator.DeleteCopy)
		moderator.POST("/reload", c.moderator.Reload)
		moderator.GET("/export", c.moderator.Export)
	}

	session := moderator.Group("/session")
	{
		session.GET("", c.session.Get)
		session.POST("/level", c.session.OpenLevel)
		session.POST("/level/submit", c.session.SubmitLevel)
		session.POST("/level/cancel", c.session.CancelLevel)
		session.POST("/copy", c.session.OpenCopy)
		session.POST("/copy/submit", c.session.SubmitCopy)
		session.POST("/copy/cancel", c.session.CancelCopy)
		session.DELETE("/copy/:copyIndex", c.session.RemoveCopy)
	}
}
