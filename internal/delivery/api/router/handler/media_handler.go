package handler

import (
	"net/http"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.ObjectStorage
}

// MediaHandler streams stored uploads back to browsers.
type MediaHandler struct {
	storage service.ObjectStorage
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{storage: params.Storage}
}

// Serve handles GET /media/*
func (h *MediaHandler) Serve(c echo.Context) error {
	key := c.Param("*")

	body, contentType, err := h.storage.Open(c.Request().Context(), key)
	if errors.Is(err, service.ErrObjectNotFound) {
		return domainerrors.ErrNotFound.WithDetails(key)
	}
	if err != nil {
		return err
	}
	defer body.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, body)
}
