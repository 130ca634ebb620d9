package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrGalleryImageNotFound is returned when a gallery image is not found.
var ErrGalleryImageNotFound = errors.New("gallery image not found")

// GalleryFilter narrows List. A nil Category returns every image.
type GalleryFilter struct {
	Category *string
}

// GalleryRepository defines the interface for gallery image persistence.
type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	FindByID(ctx context.Context, id int64) (*entity.GalleryImage, error)

	// List returns images in insertion order; Category matches exactly and case-sensitively.
	List(ctx context.Context, filter GalleryFilter) ([]*entity.GalleryImage, error)
}
