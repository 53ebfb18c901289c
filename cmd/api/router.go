package main

import (
	"net/http"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"

	"github.com/gin-gonic/gin"
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
		setupPostRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.RequireAuth(c.Resolver))
	{
		users.GET("/me", c.UserHandler.Me)
	}
}

// setupPostRoutes wires the post resource. Reads accept anonymous
// callers; writes require a verified identity up front.
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", middleware.OptionalAuth(c.Resolver), c.PostHandler.List)
		posts.GET("/:id", middleware.OptionalAuth(c.Resolver), c.PostHandler.Get)

		posts.POST("", middleware.RequireAuth(c.Resolver), c.PostHandler.Create)
		posts.PATCH("/:id", middleware.RequireAuth(c.Resolver), c.PostHandler.Update)
		posts.DELETE("/:id", middleware.RequireAuth(c.Resolver), c.PostHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "up"

		if c.Cache != nil {
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				status["cache"] = "down"
			} else {
				status["cache"] = "up"
			}
		} else {
			status["cache"] = "disabled"
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
