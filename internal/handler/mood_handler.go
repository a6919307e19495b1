package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/ryanwiwcharyk/moodlog/internal/middleware"
	"github.com/ryanwiwcharyk/moodlog/internal/model"
)

// LogMoodRequest is the body for POST /moods.
type LogMoodRequest struct {
	MoodTypeID uint   `json:"mood_type_id" validate:"required"`
	Thoughts   string `json:"thoughts"`
}

// LogMoodResponse returns both rows written by a successful log.
type LogMoodResponse struct {
	UserMood model.UserMood    `json:"user_mood"`
	History  model.MoodHistory `json:"history"`
}

// parseMonth reads a "YYYY-MM" month query value, defaulting to the current
// month.
func parseMonth(raw string) (int, time.Month, bool) {
	if raw == "" {
		now := time.Now().UTC()
		return now.Year(), now.Month(), true
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// @Summary List mood types
// @Description Return the fixed mood reference set in stable id order.
// @Tags Moods
// @Produce json
// @Success 200 {array} model.MoodType
// @Router /moodtypes [get]
// MoodTypesFiber lists the mood reference set for Fiber.
func (h *MoodHandler) MoodTypesFiber(c *fiber.Ctx) error {
	types, err := h.Service.MoodTypes(c.Context())
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusOK).JSON(types)
}

// MoodTypesGin lists the mood reference set for Gin.
func (h *MoodHandler) MoodTypesGin(c *gin.Context) {
	types, err := h.Service.MoodTypes(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Mood legend
// @Description Return the mood-to-style mapping used to color the calendar.
// @Tags Moods
// @Produce json
// @Success 200 {array} model.MoodStyle
// @Router /moodtypes/legend [get]
// MoodLegendFiber returns the style table for Fiber.
func (h *MoodHandler) MoodLegendFiber(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.MoodStyles())
}

// MoodLegendGin returns the style table for Gin.
func (h *MoodHandler) MoodLegendGin(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.MoodStyles())
}

// @Summary Log a mood
// @Description Record one mood event for the acting user. Writes the mood body and its history entry atomically.
// @Tags Moods
// @Accept json
// @Produce json
// @Param request body LogMoodRequest true "Mood selection and thoughts"
// @Success 201 {object} LogMoodResponse
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /moods [post]
// LogMoodFiber records a mood for Fiber.
func (h *MoodHandler) LogMoodFiber(c *fiber.Ctx) error {
	var req LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "mood_type_id is required"})
	}

	userMood, history, err := h.Service.LogMood(middleware.UserIDFromFiber(c), req.MoodTypeID, req.Thoughts)
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusCreated).JSON(LogMoodResponse{UserMood: *userMood, History: *history})
}

// LogMoodGin records a mood for Gin.
func (h *MoodHandler) LogMoodGin(c *gin.Context) {
	var req LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "mood_type_id is required"})
		return
	}

	userMood, history, err := h.Service.LogMood(middleware.UserIDFromGin(c), req.MoodTypeID, req.Thoughts)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusCreated, LogMoodResponse{UserMood: *userMood, History: *history})
}

// @Summary Mood history
// @Description Return the acting user's full append-only mood history, oldest first.
// @Tags Moods
// @Produce json
// @Success 200 {array} model.MoodHistory
// @Security BearerAuth
// @Router /moods [get]
// HistoryFiber lists mood history for Fiber.
func (h *MoodHandler) HistoryFiber(c *fiber.Ctx) error {
	history, err := h.Service.History(middleware.UserIDFromFiber(c))
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusOK).JSON(history)
}

// HistoryGin lists mood history for Gin.
func (h *MoodHandler) HistoryGin(c *gin.Context) {
	history, err := h.Service.History(middleware.UserIDFromGin(c))
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Mood calendar
// @Description Return one (date, mood type) entry per mood logged by the acting user in the given month.
// @Tags Moods
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {array} model.CalendarEntry
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /moods/calendar [get]
// CalendarFiber returns the month's calendar entries for Fiber.
func (h *MoodHandler) CalendarFiber(c *fiber.Ctx) error {
	year, month, ok := parseMonth(c.Query("month"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "month must be formatted as YYYY-MM"})
	}

	entries, err := h.Service.Calendar(middleware.UserIDFromFiber(c), year, month)
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// CalendarGin returns the month's calendar entries for Gin.
func (h *MoodHandler) CalendarGin(c *gin.Context) {
	year, month, ok := parseMonth(c.Query("month"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "month must be formatted as YYYY-MM"})
		return
	}

	entries, err := h.Service.Calendar(middleware.UserIDFromGin(c), year, month)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Current account
// @Description Return the user behind the session token.
// @Tags Auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /me [get]
// MeFiber returns the acting user for Fiber.
func (h *MoodHandler) MeFiber(c *fiber.Ctx) error {
	user, err := h.Service.GetUserByID(middleware.UserIDFromFiber(c))
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// MeGin returns the acting user for Gin.
func (h *MoodHandler) MeGin(c *gin.Context) {
	user, err := h.Service.GetUserByID(middleware.UserIDFromGin(c))
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, user)
}
