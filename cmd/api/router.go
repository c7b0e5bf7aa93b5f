package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/infrastructure/realtime"
	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIP(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)
	elevated := middleware.RequireElevated()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c, auth)
		setupCategoryRoutes(v1, c, auth, elevated)
		setupBookRoutes(v1, c, auth, elevated)
		setupProfileRoutes(v1, c, auth, elevated)
		setupCommentRoutes(v1, c, auth, elevated)
		setupNotificationRoutes(v1, c, auth)

		// Real-time channel for notification pushes.
		v1.GET("/ws", auth, realtime.ServeWS(c.Hub))
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
		authGroup.POST("/refresh", c.UserHandler.Refresh)
		authGroup.POST("/logout", auth, c.UserHandler.Logout)
		authGroup.GET("/me", auth, c.UserHandler.Me)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container, auth, elevated gin.HandlerFunc) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)

		categories.POST("", auth, elevated, c.CategoryHandler.Create)
		categories.PUT("/:id", auth, elevated, c.CategoryHandler.Update)
		categories.DELETE("/:id", auth, elevated, c.CategoryHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container, auth, elevated gin.HandlerFunc) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/count", c.BookHandler.Count)
		books.GET("/:id", c.BookHandler.GetByID)

		books.POST("", auth, elevated, c.BookHandler.Create)
		books.PUT("/:id", auth, elevated, c.BookHandler.Update)
		books.DELETE("/:id", auth, elevated, c.BookHandler.Delete)
	}
}

func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container, auth, elevated gin.HandlerFunc) {
	profileGroup := v1.Group("/profile")
	{
		profileGroup.GET("", c.ProfileHandler.Get)
		profileGroup.PUT("", auth, elevated, c.ProfileHandler.Upsert)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container, auth, elevated gin.HandlerFunc) {
	// Public surface: submission and the approved feed.
	comments := v1.Group("/comments")
	{
		comments.POST("", c.CommentHandler.Submit)
		comments.GET("", c.CommentHandler.ListApproved)
	}

	// Moderation queue.
	adminComments := v1.Group("/admin/comments")
	adminComments.Use(auth, elevated)
	{
		adminComments.GET("", c.CommentHandler.List)
		adminComments.GET("/count", c.CommentHandler.Count)
		adminComments.PATCH("/:id/status", c.CommentHandler.UpdateStatus)
	}
}

func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	notifications := v1.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", c.NotificationHandler.List)
		notifications.GET("/unread-count", c.NotificationHandler.UnreadCount)
		notifications.PATCH("/:id/read", c.NotificationHandler.MarkRead)
		notifications.PATCH("/read-all", c.NotificationHandler.MarkAllRead)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
