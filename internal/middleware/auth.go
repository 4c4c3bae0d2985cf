package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

const ContextBarbershopID = "barbershopID"

type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextBarbershopID, claims.BarbershopID)

		c.Next()
	}
}

// BarbershopID returns the shop id of the authenticated caller.
func BarbershopID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextBarbershopID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
