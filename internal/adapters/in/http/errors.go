package http

import (
	"errors"
	"net/http"

	"restaurant/internal/adapters/in/http/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps core errors to HTTP status codes. Anything unrecognised is
// treated as a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
