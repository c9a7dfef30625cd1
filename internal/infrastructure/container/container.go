package container

import (
	"fmt"

	"github.com/campusmatch/campusmatch-backend/internal/cache"
	"github.com/campusmatch/campusmatch-backend/internal/config"
	httpDelivery "github.com/campusmatch/campusmatch-backend/internal/delivery/http"
	"github.com/campusmatch/campusmatch-backend/internal/delivery/http/handler"
	"github.com/campusmatch/campusmatch-backend/internal/delivery/http/middleware"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/database"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/gemini"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/server"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/storage"
	"github.com/campusmatch/campusmatch-backend/internal/logger"
	"github.com/campusmatch/campusmatch-backend/internal/repository/postgres"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/auth"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/feed"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/match"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/message"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/profile"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/swipe"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container wires every layer together
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Gemini *gemini.GeminiClient
	Server *server.Server
}

// NewContainer builds the full dependency graph.
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	store, err := storage.NewLocalStore(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// icebreaker generation is optional; without a key matches are
	// simply created without suggestions
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini client unavailable", "err", err)
			geminiClient = nil
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	likesCache := cache.NewLikesCache(redisClient)

	// Use cases
	authUseCase := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	profileUseCase := profile.NewProfileUseCase(userRepo)
	feedUseCase := feed.NewFeedUseCase(userRepo, swipeRepo)
	swipeUseCase := swipe.NewSwipeUseCase(swipeRepo, matchRepo, userRepo, likesCache, geminiClient)
	matchUseCase := match.NewMatchUseCase(matchRepo, messageRepo, userRepo)
	messageUseCase := message.NewMessageUseCase(messageRepo, matchRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase, cfg.JWT.CookieSecure)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	uploadHandler := handler.NewUploadHandler(store, authUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := httpDelivery.NewRouter(&httpDelivery.RouterConfig{
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		FeedHandler:    feedHandler,
		SwipeHandler:   swipeHandler,
		MatchHandler:   matchHandler,
		MessageHandler: messageHandler,
		UploadHandler:  uploadHandler,
		AuthMiddleware: authMiddleware,
		UploadsDir:     store.Dir(),
	})

	srv := server.NewServer(&cfg.Server, router)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Gemini: geminiClient,
		Server: srv,
	}, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("failed to close redis", "err", err)
		}
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
