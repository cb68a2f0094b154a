package container

import (
	"context"
	"fmt"
	"time"

	"vidshare-backend/internal/config"
	mediaHandler "vidshare-backend/internal/domains/media/handler"
	mediaService "vidshare-backend/internal/domains/media/service"
	"vidshare-backend/internal/domains/user"
	userHandler "vidshare-backend/internal/domains/user/handler"
	userRepository "vidshare-backend/internal/domains/user/repository"
	userService "vidshare-backend/internal/domains/user/service"
	"vidshare-backend/internal/domains/video"
	videoHandler "vidshare-backend/internal/domains/video/handler"
	videoRepository "vidshare-backend/internal/domains/video/repository"
	videoService "vidshare-backend/internal/domains/video/service"
	rediscache "vidshare-backend/internal/infrastructure/cache"
	"vidshare-backend/internal/infrastructure/database"
	"vidshare-backend/internal/infrastructure/mediacdn"
	"vidshare-backend/pkg/jwt"
	"vidshare-backend/pkg/logger"
)

// Container wires the whole dependency graph in one place:
// config, then infrastructure, then repositories, services, handlers.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB       *database.PostgresDB
	Cache    *rediscache.RedisCache
	CDNAdmin *mediacdn.AdminClient

	JWTManager *jwt.Manager

	// Repositories
	UserRepo  user.Repository
	VideoRepo video.Repository

	// Services
	UserService  user.Service
	VideoService video.Service

	// Handlers
	UserHandler  *userHandler.UserHandler
	VideoHandler *videoHandler.VideoHandler
	MediaHandler *mediaHandler.MediaHandler
}

func NewContainer() (*Container, error) {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	// 2. Infrastructure
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Shared(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	cdnAdmin := mediacdn.NewAdminClient(cfg.CDN.APIURL, cfg.CDN.PrivateKey)

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// 3. Repositories
	userRepo := userRepository.NewPostgresRepository(db.Pool, redisCache)
	videoRepo := videoRepository.NewPostgresRepository(db.Pool)

	// 4. Services
	userSvc := userService.NewUserService(userRepo, jwtManager)
	videoSvc := videoService.NewVideoService(videoRepo, redisCache)
	mediaSvc := mediaService.NewAuthService(cfg.CDN.PublicKey, cfg.CDN.PrivateKey, cfg.CDN.AuthExpiry)

	// 5. Handlers
	c := &Container{
		Config:       cfg,
		DB:           db,
		Cache:        redisCache,
		CDNAdmin:     cdnAdmin,
		JWTManager:   jwtManager,
		UserRepo:     userRepo,
		VideoRepo:    videoRepo,
		UserService:  userSvc,
		VideoService: videoSvc,
		UserHandler:  userHandler.NewUserHandler(userSvc),
		VideoHandler: videoHandler.NewVideoHandler(videoSvc),
		MediaHandler: mediaHandler.NewMediaHandler(mediaSvc),
	}

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}
