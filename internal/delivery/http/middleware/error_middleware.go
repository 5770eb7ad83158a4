// Package middleware holds HTTP-specific error handling.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/delivery/http/response"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every unhandled error as a result record.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		_ = response.Result(c, usecase.Result{
			Error:   true,
			Status:  httpErr.Code,
			Message: httpMessage(httpErr),
		})

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, domainerrors.ErrInternal)
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return fmt.Sprint(httpErr.Message)
}
