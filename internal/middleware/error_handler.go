package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas/internal/api"
	"atlas/internal/apperr"
	"atlas/internal/handler"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that reach echo in the {"detail": ...} shape.
// It replaces echo's default handler so router misses and middleware
// rejections look the same as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var werr error
	var ae *apperr.Error
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ae):
		werr = handler.RespondError(c, err)
	case errors.As(err, &he):
		detail := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			detail = msg
		}
		if he.Code >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "request failed", "error", err, "uri", c.Request().RequestURI)
			detail = http.StatusText(he.Code)
		}
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(he.Code)
		} else {
			werr = c.JSON(he.Code, api.ErrorResponse{Detail: detail})
		}
	default:
		werr = handler.RespondError(c, err)
	}
	if werr != nil {
		slog.ErrorContext(c.Request().Context(), "failed to write error response", "error", werr)
	}
}
