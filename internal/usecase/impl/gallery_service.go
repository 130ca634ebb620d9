package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "studio/internal/delivery/context"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"go.uber.org/fx"
)

type galleryService struct {
	galleryRepo repository.GalleryRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
	now         func() time.Time
}

// GalleryServiceParams holds dependencies for GalleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	GalleryRepo repository.GalleryRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewGalleryService creates the gallery usecase.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		galleryRepo: params.GalleryRepo,
		storage:     params.Storage,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *galleryService) ListImages(ctx context.Context, category string) ([]*entity.GalleryImage, error) {
	var filter repository.GalleryFilter
	if category != "" {
		filter.Category = &category
	}

	images, err := s.galleryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery images")
	}

	return images, nil
}

func (s *galleryService) GetImage(ctx context.Context, id int64) (*entity.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrGalleryImageNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrGalleryImageNotFound, "gallery image %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find gallery image")
	}

	return image, nil
}

// UploadImage stores the file first; no record is inserted when the upload fails.
func (s *galleryService) UploadImage(ctx context.Context, input *usecase.UploadGalleryImageInput) (*entity.GalleryImage, error) {
	key := galleryObjectKey(s.now(), input.FileName)

	stored, err := s.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Error("Gallery upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(err.Error()), "upload gallery image")
	}

	description := input.Description
	if description == nil {
		fileName := input.FileName
		description = &fileName
	}

	image := &entity.GalleryImage{
		ImageURL:    stored.PublicURL,
		Category:    input.Category,
		Description: description,
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to create gallery image")
	}

	return image, nil
}
