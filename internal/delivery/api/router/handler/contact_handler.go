package handler

import (
	"net/http"

	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

// ContactHandler serves the contact form and the WhatsApp QR code.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contactUC: params.ContactUC}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c echo.Context) error {
	var input usecase.SubmitContactInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	submission, err := h.contactUC.Submit(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Created(c, submission)
}

// ListSubmissions returns every contact message for staff.
func (h *ContactHandler) ListSubmissions(c echo.Context) error {
	submissions, err := h.contactUC.ListSubmissions(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, submissions)
}

// WhatsAppQR handles GET /api/contact/qr
func (h *ContactHandler) WhatsAppQR(c echo.Context) error {
	png, err := h.contactUC.WhatsAppQR(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
