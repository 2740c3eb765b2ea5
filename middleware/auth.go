package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/utils"
)

// UsernameKey is the context key holding the authenticated identity
// (the email claim of the bearer token).
const UsernameKey = "username"

// Auth enforces `Authorization: Bearer <token>` and puts the token's
// identity into the request context.
func Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return apperr.NewAuth("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperr.NewAuth("Invalid authorization header format")
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			return apperr.NewAuth("Invalid or expired token")
		}

		c.Set(UsernameKey, claims.Email)
		return next(c)
	}
}
