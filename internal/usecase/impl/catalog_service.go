package impl

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/errors"
	"studio/internal/usecase"
)

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates the service package usecase.
func NewCatalogService(serviceRepo repository.ServiceRepository) usecase.CatalogUsecase {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (s *catalogService) GetService(ctx context.Context, id int64) (*entity.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrServiceNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrServiceNotFound, "service %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

func (s *catalogService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*entity.Service, error) {
	svc := &entity.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Duration:    input.Duration,
		Details:     input.Details,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	return svc, nil
}
