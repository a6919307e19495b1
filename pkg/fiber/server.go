package fiber

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggoFiber "github.com/swaggo/fiber-swagger"

	"github.com/ryanwiwcharyk/moodlog/internal/config"
	"github.com/ryanwiwcharyk/moodlog/internal/handler"
	"github.com/ryanwiwcharyk/moodlog/internal/middleware"
	"github.com/ryanwiwcharyk/moodlog/pkg/auth"

	_ "github.com/ryanwiwcharyk/moodlog/docs" // Swagger docs
)

// NewFiberServer creates and configures a new Fiber application.
func NewFiberServer(cfg *config.AppConfig, moodHandler *handler.MoodHandler, tokens *auth.TokenManager, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
		ErrorHandler: newErrorHandler(logger),
	})

	// Middleware
	app.Use(middleware.RecoverFiber())
	app.Use(middleware.RequestIDFiber())
	app.Use(middleware.RequestLoggerFiber(logger))
	app.Use(middleware.MetricsFiber())
	app.Use(middleware.CORSFiber(cfg))
	app.Use(middleware.RateLimiterFiber(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Operational endpoints
	app.Get("/health", moodHandler.HealthHandler.CheckHealthFiber)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swaggoFiber.WrapHandler)

	api := app.Group("/api/v1")
	api.Post("/auth/register", moodHandler.RegisterFiber)
	api.Post("/auth/login", moodHandler.LoginFiber)
	api.Get("/moodtypes", moodHandler.MoodTypesFiber)
	api.Get("/moodtypes/legend", moodHandler.MoodLegendFiber)

	authed := api.Group("", middleware.RequireAuthFiber(tokens))
	authed.Get("/me", moodHandler.MeFiber)
	authed.Post("/moods", moodHandler.LogMoodFiber)
	authed.Get("/moods", moodHandler.HistoryFiber)
	authed.Get("/moods/calendar", moodHandler.CalendarFiber)
	authed.Post("/prompts", moodHandler.SendPromptFiber)
	authed.Get("/prompts", moodHandler.ListPromptsFiber)

	return app
}

// newErrorHandler builds the custom Fiber error handler.
func newErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error().Err(err).Str("path", ctx.Path()).Msg("request error")

		return ctx.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": message,
		})
	}
}

// StartFiberServer starts the Fiber server.
func StartFiberServer(app *fiber.App, cfg *config.AppConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	return app.Listen(addr)
}
