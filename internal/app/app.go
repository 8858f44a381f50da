package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "reelhub/internal/controller/http"
	"reelhub/internal/entity"
	"reelhub/internal/repo/persistent"
	"reelhub/internal/usecase"
	"reelhub/pkg/cache"
	"reelhub/pkg/config"
	"reelhub/pkg/database"
	"reelhub/pkg/jwt"
	"reelhub/pkg/logger"
	"reelhub/pkg/middleware"
	"reelhub/pkg/queue"
	"reelhub/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	authRateLimit       = 100
	authRateLimitWindow = 15 * time.Minute
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	blobClient  *storage.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	// Redis backs the auth rate limiter, so it is not optional here.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	blobClient, err := storage.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create storage client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		blobClient:  blobClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, a.blobClient, a.queueClient, a.cfg.PosterStrategy, a.cfg.PosterDir, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, a.log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, videoRepo, a.log)

	// HTTP handlers
	authHandler := apphttp.NewAuthHandler(authUseCase, a.log)
	videoHandler := apphttp.NewVideoHandler(videoUseCase, a.log)
	commentHandler := apphttp.NewCommentHandler(commentUseCase, a.log)
	adminHandler := apphttp.NewAdminHandler(adminUseCase, a.log)

	authRequired := middleware.AuthMiddleware(a.jwtService, func(userID string) (*middleware.Principal, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		return &middleware.Principal{
			ID:    user.ID,
			Role:  string(user.Role),
			Email: user.Email,
			Name:  user.Name,
		}, nil
	})

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Static("/static/posters", a.cfg.PosterDir)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(a.redisClient, "auth", authRateLimit, authRateLimitWindow))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	videos := r.Group("/videos")
	{
		videos.GET("/latest", videoHandler.Latest)
		videos.GET("/search", videoHandler.Search)
		videos.GET("/:id", videoHandler.Get)

		videos.POST("/upload-url", authRequired, middleware.RequireRole(string(entity.RoleCreator), string(entity.RoleAdmin)), videoHandler.RequestUpload)
		videos.POST("/finalize", authRequired, middleware.RequireRole(string(entity.RoleCreator), string(entity.RoleAdmin)), videoHandler.Finalize)

		videos.POST("/:id/rate", authRequired, videoHandler.Rate)
		videos.PUT("/:id", authRequired, videoHandler.UpdateMetadata)
		videos.GET("/creator/:creatorId", authRequired, videoHandler.ListByCreator)

		videos.POST("/:id/poster", authRequired, videoHandler.UploadPoster)
		videos.POST("/:id/poster-url", authRequired, videoHandler.PosterUploadGrant)
		videos.PUT("/:id/poster-url", authRequired, videoHandler.SetPosterURL)
	}

	comments := r.Group("/comments")
	{
		comments.GET("/:videoId", commentHandler.List)
		comments.POST("/:videoId", authRequired, commentHandler.Add)
	}

	admin := r.Group("/admin")
	admin.Use(authRequired, middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.POST("/promote/:userId", adminHandler.Promote)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/videos", adminHandler.ListVideos)
		admin.GET("/users/count", adminHandler.UserCount)
		admin.GET("/videos/count", adminHandler.VideoCount)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("API listening on :%s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests before the backends they depend on go away.
	shutdownErr := a.httpServer.Shutdown(ctx)
	if shutdownErr != nil {
		a.log.Error("Server forced to shutdown: %v", shutdownErr)
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if shutdownErr != nil {
		return shutdownErr
	}

	a.log.Info("Server exited")
	return nil
}
