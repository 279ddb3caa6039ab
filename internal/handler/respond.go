package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas/internal/api"
	"atlas/internal/apperr"

	"github.com/labstack/echo/v4"
)

// RespondError writes err as {"detail": ...}. Domain errors keep their
// message and status; anything else is logged and reported as a bare 500.
func RespondError(c echo.Context, err error) error {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"error", err,
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"request_id", requestID(c),
		)
	}
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return c.JSON(status, api.ErrorResponse{Detail: apperr.Detail(err)})
}

// BindAndValidate binds the request into dst and runs the echo validator.
// A body that cannot be decoded is 400; rule violations are 422.
func BindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperr.Wrap(apperr.Validation("Invalid request body").WithStatus(http.StatusBadRequest), err)
	}
	return c.Validate(dst)
}

// PathID parses the :id path parameter. Ids are Postgres INTEGER columns,
// so anything outside the int32 range is rejected here.
func PathID(c echo.Context) (int, error) {
	var id int32
	if err := echo.PathParamsBinder(c).MustInt32("id", &id).BindError(); err != nil {
		return 0, apperr.Wrap(apperr.Validation("id: must be a 32-bit integer"), err)
	}
	return int(id), nil
}

// BindingError converts an echo value-binder failure into a 422.
func BindingError(err error) error {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return apperr.Wrap(apperr.Validation(be.Field+": must be an integer"), err)
	}
	return apperr.Wrap(apperr.Validation("invalid query"), err)
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
