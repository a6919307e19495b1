package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ryanwiwcharyk/moodlog/internal/repository"
	"github.com/ryanwiwcharyk/moodlog/internal/service"
)

// MoodHandler encapsulates all handlers for the application: the mood
// service operations, the prompt log, and the health check.
type MoodHandler struct {
	Service       service.MoodServiceInterface
	Prompts       *service.PromptService
	HealthHandler *HealthHandler
	Validate      *validator.Validate
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(svc service.MoodServiceInterface, prompts *service.PromptService, health *HealthHandler) *MoodHandler {
	return &MoodHandler{
		Service:       svc,
		Prompts:       prompts,
		HealthHandler: health,
		Validate:      validator.New(),
	}
}

// errorResponse is the JSON error shape returned to clients: inline error
// text, no retry affordance.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to HTTP status codes. Unrecognized errors
// become 500 without leaking internals.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrUnknownMoodType),
		errors.Is(err, service.ErrPromptEmpty):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrDuplicateUser):
		return http.StatusConflict, err.Error()
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
