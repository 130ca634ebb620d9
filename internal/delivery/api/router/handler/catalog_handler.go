package handler

import (
	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the service packages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, services)
}

// GetService handles GET /api/services/:id
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.catalogUC.GetService(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, svc)
}

// CreateService handles the staff creation of a service package.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var input usecase.CreateServiceInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Created(c, svc)
}
