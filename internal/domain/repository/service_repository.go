package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a service package is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the interface for service package persistence.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id int64) (*entity.Service, error)
	List(ctx context.Context) ([]*entity.Service, error)
}
