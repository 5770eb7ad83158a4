// Package response writes the auth result record as the HTTP body.
package response

import (
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Result writes r as JSON with r.Status as the HTTP status.
func Result(c echo.Context, r usecase.Result) error {
	return c.JSON(r.Status, r)
}

// Error writes the result record for err.
func Error(c echo.Context, err error) error {
	return Result(c, usecase.ErrorResult(err))
}
