package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// Authenticate creates a JWT authentication middleware.
// Each failure mode gets its own 401 message so clients can
// distinguish a missing header from an expired token.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.Error("Authorization header is required"))
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.Error("Authorization header must be 'Bearer {token}'"))
			}

			claims, err := auth.ValidateAccessToken(parts[1], secret)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, models.Error("Token has expired"))
				}
				return c.JSON(http.StatusUnauthorized, models.Error("Invalid token"))
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("company_id", claims.CompanyID)

			return next(c)
		}
	}
}

// Authorize restricts a route to the given roles. Must run after
// Authenticate.
func Authorize(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, models.Error("You do not have permission to access this resource."))
		}
	}
}

// OptionalAuth populates user context when a valid token is present
// and silently continues anonymously otherwise.
func OptionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			claims, err := auth.ValidateAccessToken(parts[1], secret)
			if err != nil {
				return next(c)
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("company_id", claims.CompanyID)

			return next(c)
		}
	}
}
