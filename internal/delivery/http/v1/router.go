package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"godev-site-backend/config"
	"godev-site-backend/internal/delivery/http/middleware"
	"godev-site-backend/internal/delivery/http/response"
	"godev-site-backend/internal/domain"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	ApplicationUC domain.ApplicationUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// The two public form endpoints share one submit limiter.
	submitLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitSubmitThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:submit:",
	})

	NewContactHandler(api, deps.ContactUC, submitLimit)
	NewCareerHandler(api, deps.ApplicationUC, submitLimit)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
