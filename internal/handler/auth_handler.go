package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and the logged-in user.
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// @Summary Register a new user
// @Description Create an account. Fails when a field is blank, the passwords do not match, or the email is already registered.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} model.User
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
// RegisterFiber handles registration for Fiber.
func (h *MoodHandler) RegisterFiber(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "all fields are required"})
	}

	user, err := h.Service.Register(req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// RegisterGin handles registration for Gin.
func (h *MoodHandler) RegisterGin(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "all fields are required"})
		return
	}

	user, err := h.Service.Register(req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Log in
// @Description Exchange credentials for a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
// LoginFiber handles login for Fiber.
func (h *MoodHandler) LoginFiber(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "all fields are required"})
	}

	user, token, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		status, msg := statusFor(err)
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
	return c.Status(fiber.StatusOK).JSON(LoginResponse{Token: token, User: *user})
}

// LoginGin handles login for Gin.
func (h *MoodHandler) LoginGin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "all fields are required"})
		return
	}

	user, token, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, errorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: *user})
}
