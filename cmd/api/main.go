package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/amenity"
	authUC "github.com/marcos-nsantos/hbnb-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/place"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/review"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	amenityRepo := postgres.NewAmenityRepo(pool)
	placeRepo := postgres.NewPlaceRepo(pool)
	reviewRepo := postgres.NewReviewRepo(pool)
	refreshTokenRepo := postgres.NewRefreshTokenRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	// Use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, cfg.JWT.RefreshTokenTTL)
	userSvc := user.NewService(userRepo, passwordHasher)
	amenitySvc := amenity.NewService(amenityRepo)
	placeSvc := place.NewService(placeRepo, userRepo, amenityRepo)
	reviewSvc := review.NewService(reviewRepo, placeRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	amenityHandler := handler.NewAmenityHandler(amenitySvc)
	placeHandler := handler.NewPlaceHandler(placeSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	if cfg.Admin.BootstrapEnabled {
		logger.Warn("admin bootstrap endpoint is enabled, do not use this in production")
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:           authHandler,
		UserHandler:           userHandler,
		AmenityHandler:        amenityHandler,
		PlaceHandler:          placeHandler,
		ReviewHandler:         reviewHandler,
		AuthMiddleware:        authMiddleware,
		RateLimiter:           rateLimiter,
		Logger:                logger,
		Environment:           cfg.Server.Environment,
		BootstrapAdminEnabled: cfg.Admin.BootstrapEnabled,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
