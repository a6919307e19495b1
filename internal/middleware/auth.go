package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/ryanwiwcharyk/moodlog/pkg/auth"
)

// UserIDKey is the context key carrying the authenticated user id.
const UserIDKey = "userID"

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// RequireAuthFiber rejects requests without a valid session token and stores
// the acting user's id in locals.
func RequireAuthFiber(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing session token",
			})
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid session token",
			})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// RequireAuthGin rejects requests without a valid session token and stores
// the acting user's id in the context.
func RequireAuthGin(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing session token",
			})
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid session token",
			})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserIDFromFiber returns the id stored by RequireAuthFiber.
func UserIDFromFiber(c *fiber.Ctx) uint {
	if id, ok := c.Locals(UserIDKey).(uint); ok {
		return id
	}
	return 0
}

// UserIDFromGin returns the id stored by RequireAuthGin.
func UserIDFromGin(c *gin.Context) uint {
	if id, ok := c.Get(UserIDKey); ok {
		if v, ok := id.(uint); ok {
			return v
		}
	}
	return 0
}
