package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"studio/internal/domain/entity"
)

// CreateServiceInput defines a new service package.
type CreateServiceInput struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description *string         `json:"description"`
	Price       *int64          `json:"price" validate:"required,min=0"`
	Duration    *string         `json:"duration"`
	Details     json.RawMessage `json:"details"`
}

func (in *CreateServiceInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = trimPtr(in.Description)
	in.Duration = trimPtr(in.Duration)
}

// CatalogUsecase defines the service package operations.
type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]*entity.Service, error)
	GetService(ctx context.Context, id int64) (*entity.Service, error)
	CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error)
}
