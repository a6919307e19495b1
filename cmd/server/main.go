package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ryanwiwcharyk/moodlog/docs"
	"github.com/ryanwiwcharyk/moodlog/internal/config"
	"github.com/ryanwiwcharyk/moodlog/internal/handler"
	"github.com/ryanwiwcharyk/moodlog/internal/repository"
	"github.com/ryanwiwcharyk/moodlog/internal/service"
	"github.com/ryanwiwcharyk/moodlog/pkg/ai"
	"github.com/ryanwiwcharyk/moodlog/pkg/auth"
	"github.com/ryanwiwcharyk/moodlog/pkg/database"
	fiberserver "github.com/ryanwiwcharyk/moodlog/pkg/fiber"
	ginserver "github.com/ryanwiwcharyk/moodlog/pkg/gin"
)

// @title Moodlog API
// @version 1.0
// @description Mood journaling service: register, log in, record moods, and view a calendar of past moods.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.env")
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	// Update Swagger info based on config
	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.BasePath = cfg.SwaggerBasePath
	docs.SwaggerInfo.Schemes = cfg.SwaggerSchemes
	docs.SwaggerInfo.Title = cfg.AppName + " API"

	// Connect to database and bring the schema up to date
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Optional Redis cache for the mood reference set
	var cache *service.MoodTypeCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cache = service.NewMoodTypeCache(redisClient, cfg.CacheTTLExpiration)
	}

	// Optional AI text-completion collaborator
	var generator ai.TextGenerator
	if cfg.AIBaseURL != "" {
		generator = ai.NewOpenAICompatGenerator(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	} else {
		logger.Warn().Msg("AI_BASE_URL not set; prompt submissions will resolve as failed")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AppName, cfg.SessionTTL)

	// Wire repositories, services, and handlers
	userRepo := repository.NewUserRepository(db)
	moodTypeRepo := repository.NewMoodTypeRepository(db)
	moodRepo := repository.NewMoodRepository(db)

	moodSvc := service.NewMoodService(userRepo, moodTypeRepo, moodRepo, tokens, cache, logger)
	promptSvc := service.NewPromptService(generator, 0, logger)

	healthHandler := handler.NewHealthHandler(db)
	moodHandler := handler.NewMoodHandler(moodSvc, promptSvc, healthHandler)

	// Graceful shutdown channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the selected server
	switch cfg.ServerFramework {
	case "fiber":
		fiberApp := fiberserver.NewFiberServer(cfg, moodHandler, tokens, logger)
		go func() {
			if err := fiberserver.StartFiberServer(fiberApp, cfg); err != nil {
				logger.Fatal().Err(err).Msg("failed to start Fiber server")
			}
		}()
		logger.Info().Int("port", cfg.ServerPort).Msg("Fiber server started")
		<-quit
		logger.Info().Msg("shutting down Fiber server")
		if err := fiberApp.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("error during Fiber server shutdown")
		}
	case "gin":
		ginEngine := ginserver.NewGinServer(cfg, moodHandler, tokens, logger)
		httpServer, err := ginserver.StartGinServer(ginEngine, cfg, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to start GIN server")
		}
		logger.Info().Int("port", cfg.ServerPort).Msg("GIN server started")
		<-quit
		logger.Info().Msg("shutting down GIN server")
		ginserver.ShutdownGinServer(httpServer, 5*time.Second, logger)
	default:
		logger.Fatal().Str("framework", cfg.ServerFramework).Msg("unsupported server framework")
	}

	// Let in-flight prompt resolutions finish before exiting
	promptSvc.Wait()

	logger.Info().Msg("server gracefully stopped")
}

// newLogger builds the application logger from config.
func newLogger(cfg *config.AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.AppEnv == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Str("app", cfg.AppName).Logger()
}
