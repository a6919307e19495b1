package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ryanwiwcharyk/moodlog/internal/config"
	"github.com/ryanwiwcharyk/moodlog/internal/handler"
	"github.com/ryanwiwcharyk/moodlog/internal/middleware"
	"github.com/ryanwiwcharyk/moodlog/pkg/auth"

	_ "github.com/ryanwiwcharyk/moodlog/docs" // Swagger docs
)

// NewGinServer creates and configures a new Gin application.
func NewGinServer(cfg *config.AppConfig, moodHandler *handler.MoodHandler, tokens *auth.TokenManager, logger zerolog.Logger) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RecoverGin())
	router.Use(middleware.RequestIDGin())
	router.Use(middleware.RequestLoggerGin(logger))
	router.Use(middleware.MetricsGin())
	router.Use(middleware.CORSGin(cfg))
	router.Use(middleware.RateLimiterGin(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Operational endpoints
	router.GET("/health", moodHandler.HealthHandler.CheckHealthGin)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	url := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler, url))

	api := router.Group("/api/v1")
	api.POST("/auth/register", moodHandler.RegisterGin)
	api.POST("/auth/login", moodHandler.LoginGin)
	api.GET("/moodtypes", moodHandler.MoodTypesGin)
	api.GET("/moodtypes/legend", moodHandler.MoodLegendGin)

	authed := api.Group("", middleware.RequireAuthGin(tokens))
	authed.GET("/me", moodHandler.MeGin)
	authed.POST("/moods", moodHandler.LogMoodGin)
	authed.GET("/moods", moodHandler.HistoryGin)
	authed.GET("/moods/calendar", moodHandler.CalendarGin)
	authed.POST("/prompts", moodHandler.SendPromptGin)
	authed.GET("/prompts", moodHandler.ListPromptsGin)

	return router
}

// StartGinServer starts the Gin server in a goroutine and returns the
// underlying http.Server for shutdown control.
func StartGinServer(router *gin.Engine, cfg *config.AppConfig, logger zerolog.Logger) (*http.Server, error) {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("GIN server failed")
		}
	}()

	return srv, nil
}

// ShutdownGinServer gracefully shuts down the server within the timeout.
func ShutdownGinServer(srv *http.Server, timeout time.Duration, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during GIN server shutdown")
	}
}
