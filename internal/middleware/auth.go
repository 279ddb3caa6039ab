package middleware

import (
	"strings"

	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/model"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var resolveUser = service.ResolveUser

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperr.Unauthorized("Not authenticated")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperr.Unauthorized("Not authenticated")
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth resolves the bearer token to an active user and stores it
// under ContextUserKey.
func RequireAuth(tm *service.TokenManager, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			user, err := resolveUser(c.Request().Context(), db, tm, token)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
