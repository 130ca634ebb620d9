package postgres

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/errors"
	"studio/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery image repository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{db: db}
}

func (repo *galleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	imageM := fromGalleryImageDomain(image)
	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *galleryRepository) FindByID(ctx context.Context, id int64) (*entity.GalleryImage, error) {
	var imageM model.GalleryImageModel
	if err := repo.db.WithContext(ctx).First(&imageM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrGalleryImageNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find gallery image")
	}

	return toGalleryImageDomain(&imageM), nil
}

func (repo *galleryRepository) List(ctx context.Context, filter repository.GalleryFilter) ([]*entity.GalleryImage, error) {
	query := repo.db.WithContext(ctx).Order("id ASC")
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var images []model.GalleryImageModel
	if err := query.Find(&images).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list gallery images")
	}

	result := make([]*entity.GalleryImage, 0, len(images))
	for i := range images {
		result = append(result, toGalleryImageDomain(&images[i]))
	}

	return result, nil
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service package repository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)
	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID

	return nil
}

func (repo *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).First(&serviceM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrServiceNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var services []model.ServiceModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	result := make([]*entity.Service, 0, len(services))
	for i := range services {
		result = append(result, toServiceDomain(&services[i]))
	}

	return result, nil
}

// --- Mapper Functions ---

func toGalleryImageDomain(data *model.GalleryImageModel) *entity.GalleryImage {
	return &entity.GalleryImage{
		ID:          data.ID,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromGalleryImageDomain(data *entity.GalleryImage) *model.GalleryImageModel {
	return &model.GalleryImageModel{
		ID:          data.ID,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
		Description: data.Description,
	}
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	var details []byte
	if len(data.Details) > 0 {
		details = append(details, data.Details...)
	}

	return &entity.Service{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		Details:     details,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	var details datatypes.JSON
	if len(data.Details) > 0 {
		details = datatypes.JSON(append([]byte(nil), data.Details...))
	}

	return &model.ServiceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		Details:     details,
	}
}
