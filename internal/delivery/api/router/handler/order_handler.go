package handler

import (
	"strconv"

	"studio/internal/delivery/api/response"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves service orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.Create(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

// List returns every order, or only those of ?user_id= for staff.
func (h *OrderHandler) List(c echo.Context) error {
	var userID *int64
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			return domainerrors.ErrInvalidID.WithDetails("user_id=" + raw)
		}
		userID = &id
	}

	orders, err := h.orderUC.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

// Get handles GET /api/admin/orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}
