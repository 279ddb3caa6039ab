// Package auth serves registration, login and the current-user lookup.
package auth

import (
	"net/http"

	"atlas/internal/api"
	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/handler"
	"atlas/internal/middleware"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	registerUser     = service.RegisterUser
	authenticateUser = service.AuthenticateUser
)

// RegisterHandler creates a user account
// @Summary     Register
// @Description Creates an active user. The password is stored as a bcrypt hash.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "credentials"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		user, err := registerUser(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// LoginHandler exchanges email and password for an access token
// @Summary     Login
// @Description OAuth2 password form; username carries the email
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "email"
// @Param       password formData string true "password"
// @Success     200      {object} api.TokenResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     422      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tm *service.TokenManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		user, err := authenticateUser(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		token, expiresAt, err := tm.Issue(user.Email, 0)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   expiresAt,
		})
	}
}

// MeHandler returns the authenticated user
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return handler.RespondError(c, apperr.Unauthorized("Not authenticated"))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
