package api

import (
	"github.com/gin-gonic/gin"

	"heroapp/internal/adapter/http/handler"
	"heroapp/internal/adapter/http/middleware"
	"heroapp/internal/core/port"
	"heroapp/internal/shared"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	HeroHandler *handler.HeroHandler
	TokenIssuer port.TokenIssuer
	Users       port.UserRepository
}

func SetupRouter(handlers HandlersConfig, metrics *shared.AppMetrics, logger *shared.AppLogger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	shared.SetupGinMiddleware(router, "heroapp", metrics, logger)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	rateLimiter := shared.NewRateLimiter(logger.Logger.Logger, metrics)
	router.Use(rateLimiter.RateLimitMiddleware())

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests skips telemetry, metrics and rate limiting so suites can
// exercise handlers without external collectors.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.AuthHandler != nil {
		setupPublicRoutes(router, handlers.AuthHandler)
	}

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(handlers.TokenIssuer, handlers.Users))
	{
		if handlers.AuthHandler != nil {
			protected.GET("/me", handlers.AuthHandler.Me)
			protected.DELETE("/account", handlers.AuthHandler.DeleteAccount)
		}

		if handlers.HeroHandler != nil {
			protected.GET("/heroes", handlers.HeroHandler.GetAllHeroes)
			protected.POST("/heroes", handlers.HeroHandler.CreateHero)
			protected.PUT("/heroes/:uuid", handlers.HeroHandler.UpdateHero)
			protected.DELETE("/heroes/:uuid", handlers.HeroHandler.DeleteByUUID)
		}
	}
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	public := router.Group("/")
	{
		public.POST("/signup", authHandler.RegisterByEmailAndPassword)
		public.POST("/auth", authHandler.AuthByEmailAndPassword)
		public.POST("/auth/refresh", authHandler.RefreshTokenPair)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
