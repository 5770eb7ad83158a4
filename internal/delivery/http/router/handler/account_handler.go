// Package handler contains the HTTP handlers for the application.
package handler

import (
	"tasker/internal/delivery/http/response"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler exposes signup and login.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Register handles POST /api/users/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, domainerrors.ErrMalformedRequest)
	}

	return response.Result(c, usecase.SignupResult(h.uc.Signup(c.Request().Context(), &input)))
}

// Login handles POST /api/users/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, domainerrors.ErrMalformedRequest)
	}

	return response.Result(c, usecase.LoginResult(h.uc.Login(c.Request().Context(), &input)))
}
