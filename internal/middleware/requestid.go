package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// GinRequestIDKey is the gin context key carrying the request id.
const GinRequestIDKey = "requestID"

// RequestIDFiber tags each request with an id via Fiber's middleware.
func RequestIDFiber() fiber.Handler {
	return requestid.New()
}

// RequestIDGin tags each request with a UUID and echoes it in X-Request-ID.
func RequestIDGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(GinRequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFromFiber retrieves the id set by RequestIDFiber.
func RequestIDFromFiber(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

// RequestIDFromGin retrieves the id set by RequestIDGin.
func RequestIDFromGin(c *gin.Context) string {
	if id, ok := c.Get(GinRequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
