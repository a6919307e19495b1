package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/ryanwiwcharyk/moodlog/internal/middleware"
)

// PromptRequest is the body for POST /prompts.
type PromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// @Summary Submit an AI prompt
// @Description Append a prompt to the acting user's prompt log. The entry is returned pending and resolves in the background.
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body PromptRequest true "Prompt text"
// @Success 202 {object} service.PromptEntry
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /prompts [post]
// SendPromptFiber submits a prompt for Fiber.
func (h *MoodHandler) SendPromptFiber(c *fiber.Ctx) error {
	var req PromptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "prompt text is required"})
	}

	entry, err := h.Prompts.Send(middleware.UserIDFromFiber(c), req.Prompt)
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusAccepted).JSON(entry)
}

// SendPromptGin submits a prompt for Gin.
func (h *MoodHandler) SendPromptGin(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "prompt text is required"})
		return
	}

	entry, err := h.Prompts.Send(middleware.UserIDFromGin(c), req.Prompt)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusAccepted, entry)
}

// @Summary List prompt results
// @Description Return the acting user's prompt log in insertion order, pending entries included.
// @Tags Prompts
// @Produce json
// @Success 200 {array} service.PromptEntry
// @Security BearerAuth
// @Router /prompts [get]
// ListPromptsFiber lists the prompt log for Fiber.
func (h *MoodHandler) ListPromptsFiber(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Prompts.List(middleware.UserIDFromFiber(c)))
}

// ListPromptsGin lists the prompt log for Gin.
func (h *MoodHandler) ListPromptsGin(c *gin.Context) {
	c.JSON(http.StatusOK, h.Prompts.List(middleware.UserIDFromGin(c)))
}
