package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vidshare-backend/internal/shared/middleware"
	"vidshare-backend/internal/shared/response"
	"vidshare-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupMediaRoutes(v1, c)
		setupVideoRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

func setupMediaRoutes(v1 *gin.RouterGroup, c *container.Container) {
	media := v1.Group("/media")
	{
		// Credentials only authorize an upload, so no auth gate here.
		media.GET("/upload-auth", c.MediaHandler.GetUploadAuth)
	}
}

func setupVideoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	videos := v1.Group("/videos")
	{
		videos.GET("", c.VideoHandler.List)
		videos.GET("/:id", c.VideoHandler.GetByID)

		// Publishing requires a logged-in owner.
		videos.POST("", middleware.AuthMiddleware(c.Config.JWT.Secret), c.VideoHandler.Publish)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" || cacheStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, "", gin.H{
			"service":  c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
