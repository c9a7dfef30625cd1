package http

import (
	"net/http"
	"regexp"

	"github.com/campusmatch/campusmatch-backend/internal/delivery/http/handler"
	"github.com/campusmatch/campusmatch-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// instagram handles are 1-30 chars of letters, digits, dots and
// underscores, optionally with a leading @
var instagramRe = regexp.MustCompile(`^@?[A-Za-z0-9._]{1,30}$`)

// RegisterValidators installs the custom binding rules used by request
// structs. Must run before the first request is bound.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("instagram", func(fl validator.FieldLevel) bool {
			return instagramRe.MatchString(fl.Field().String())
		})
	}
}

// RouterConfig holds all dependencies for the router
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	FeedHandler    *handler.FeedHandler
	SwipeHandler   *handler.SwipeHandler
	MatchHandler   *handler.MatchHandler
	MessageHandler *handler.MessageHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
	UploadsDir     string
}

// NewRouter creates and configures the HTTP router.
func NewRouter(cfg *RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.Default()

	router.GET("/health", healthCheck)
	router.HEAD("/health", healthCheck)

	// uploaded photos are served as static files
	router.Static("/uploads", cfg.UploadsDir)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", cfg.AuthHandler.Register)
		authGroup.POST("/login", cfg.AuthHandler.Login)
		authGroup.POST("/logout", cfg.AuthHandler.Logout)
	}

	// photo upload is reachable before registration completes
	router.POST("/upload", cfg.UploadHandler.Upload)

	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.GET("/profile", cfg.ProfileHandler.GetProfile)
		protected.PATCH("/profile", cfg.ProfileHandler.UpdateProfile)

		protected.GET("/users", cfg.FeedHandler.GetCandidates)

		protected.POST("/swipe", cfg.SwipeHandler.Swipe)
		protected.GET("/swipe/likes-count", cfg.SwipeHandler.LikesCount)

		protected.GET("/matches", cfg.MatchHandler.ListMatches)

		protected.GET("/messages", cfg.MessageHandler.GetThread)
		protected.POST("/messages", cfg.MessageHandler.Send)
	}

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
