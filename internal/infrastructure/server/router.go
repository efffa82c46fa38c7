package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	amenityHandler *handler.AmenityHandler
	placeHandler   *handler.PlaceHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger

	bootstrapAdminEnabled bool
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AmenityHandler *handler.AmenityHandler
	PlaceHandler   *handler.PlaceHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string

	// BootstrapAdminEnabled routes the dev-only admin bootstrap endpoint.
	// When false the route does not exist at all.
	BootstrapAdminEnabled bool
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:                engine,
		authHandler:           cfg.AuthHandler,
		userHandler:           cfg.UserHandler,
		amenityHandler:        cfg.AmenityHandler,
		placeHandler:          cfg.PlaceHandler,
		reviewHandler:         cfg.ReviewHandler,
		authMiddleware:        cfg.AuthMiddleware,
		rateLimiter:           cfg.RateLimiter,
		logger:                cfg.Logger,
		bootstrapAdminEnabled: cfg.BootstrapAdminEnabled,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			if r.bootstrapAdminEnabled {
				auth.POST("/bootstrap-admin", r.authHandler.BootstrapAdmin)
			}
		}

		users := api.Group("/users")
		{
			users.GET("", r.userHandler.List)
			users.GET("/:id", r.userHandler.Get)
			users.POST("", r.authMiddleware.RequireAuth(), r.userHandler.Create)
			users.PUT("/:id", r.authMiddleware.RequireAuth(), r.userHandler.Update)
		}

		amenities := api.Group("/amenities")
		{
			amenities.GET("", r.amenityHandler.List)
			amenities.GET("/:id", r.amenityHandler.Get)
			amenities.POST("", r.authMiddleware.RequireAuth(), r.amenityHandler.Create)
			amenities.PUT("/:id", r.authMiddleware.RequireAuth(), r.amenityHandler.Update)
		}

		places := api.Group("/places")
		{
			places.GET("", r.placeHandler.List)
			places.GET("/:id", r.placeHandler.Get)
			places.GET("/:id/reviews", r.reviewHandler.ListByPlace)
			places.POST("", r.authMiddleware.RequireAuth(), r.placeHandler.Create)
			places.PUT("/:id", r.authMiddleware.RequireAuth(), r.placeHandler.Update)
			places.DELETE("/:id", r.authMiddleware.RequireAuth(), r.placeHandler.Delete)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", r.reviewHandler.List)
			reviews.GET("/:id", r.reviewHandler.Get)
			reviews.POST("", r.authMiddleware.RequireAuth(), r.reviewHandler.Create)
			reviews.PUT("/:id", r.authMiddleware.RequireAuth(), r.reviewHandler.Update)
			reviews.DELETE("/:id", r.authMiddleware.RequireAuth(), r.reviewHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
