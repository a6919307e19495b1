package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoverFiber turns panics into 500 responses.
func RecoverFiber() fiber.Handler {
	return recover.New()
}

// RecoverGin turns panics into 500 responses.
func RecoverGin() gin.HandlerFunc {
	return gin.Recovery()
}
