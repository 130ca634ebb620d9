package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows List. A nil UserID returns every order.
type OrderFilter struct {
	UserID *int64
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus replaces the status of an existing order and returns the updated record.
	// Any string is accepted. A missing id returns ErrOrderNotFound and creates nothing.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error)
}
