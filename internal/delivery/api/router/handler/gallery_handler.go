package handler

import (
	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GalleryHandlerParams holds dependencies for GalleryHandler, injected by Fx.
type GalleryHandlerParams struct {
	fx.In

	GalleryUC usecase.GalleryUsecase
}

// GalleryHandler serves the photo gallery.
type GalleryHandler struct {
	galleryUC usecase.GalleryUsecase
}

// NewGalleryHandler is the constructor for GalleryHandler
func NewGalleryHandler(params GalleryHandlerParams) *GalleryHandler {
	return &GalleryHandler{galleryUC: params.GalleryUC}
}

// ListImages handles GET /api/gallery with an optional exact category filter.
func (h *GalleryHandler) ListImages(c echo.Context) error {
	images, err := h.galleryUC.ListImages(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}

	return response.OK(c, images)
}

// GetImage handles GET /api/gallery/:id
func (h *GalleryHandler) GetImage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	image, err := h.galleryUC.GetImage(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, image)
}

// UploadImage handles the staff multipart upload of a new gallery photo.
func (h *GalleryHandler) UploadImage(c echo.Context) error {
	attachment, file, err := openFormFile(c, "file")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	input := &usecase.UploadGalleryImageInput{
		Category:    c.FormValue("category"),
		Description: optionalForm(c, "description"),
	}
	if attachment != nil {
		input.FileName = attachment.FileName
		input.ContentType = attachment.ContentType
		input.Body = attachment.Body
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	image, err := h.galleryUC.UploadImage(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, image)
}
