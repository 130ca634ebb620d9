package handler

import (
	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthHandler issues staff access tokens.
type AuthHandler struct {
	userUC usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{userUC: params.UserUC}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
