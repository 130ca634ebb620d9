package usecase

import (
	"context"
	"io"
	"strings"

	"studio/internal/domain/entity"
)

// UploadGalleryImageInput defines a staff upload of a new gallery photo.
type UploadGalleryImageInput struct {
	Category    string    `json:"category" form:"category" validate:"required,max=100"`
	Description *string   `json:"description" form:"description" validate:"omitempty,max=500"`
	FileName    string    `json:"-" form:"file" validate:"required"`
	ContentType string    `json:"-" form:"-"`
	Body        io.Reader `json:"-" form:"-"`
}

func (in *UploadGalleryImageInput) Normalize() {
	in.Category = strings.TrimSpace(in.Category)
	in.Description = trimPtr(in.Description)
	in.FileName = strings.TrimSpace(in.FileName)
}

// GalleryUsecase defines the gallery browsing and upload operations.
type GalleryUsecase interface {
	// ListImages returns all images, or only those whose category equals category when it is non-empty.
	ListImages(ctx context.Context, category string) ([]*entity.GalleryImage, error)
	GetImage(ctx context.Context, id int64) (*entity.GalleryImage, error)
	UploadImage(ctx context.Context, input *UploadGalleryImageInput) (*entity.GalleryImage, error)
}
