package usecase

import (
	"context"
	"strings"
	"time"

	"studio/internal/domain/entity"
)

// CreateOrderInput defines the order body. Every field is optional.
type CreateOrderInput struct {
	UserID        *int64     `json:"user_id" validate:"omitempty,min=1"`
	ServiceID     *int64     `json:"service_id" validate:"omitempty,min=1"`
	SessionDate   *time.Time `json:"session_date"`
	Status        *string    `json:"status" validate:"omitempty,max=50"`
	PaymentStatus *string    `json:"payment_status" validate:"omitempty,max=50"`
	Amount        *int64     `json:"amount" validate:"omitempty,min=0"`
}

func (in *CreateOrderInput) Normalize() {
	in.Status = trimPtr(in.Status)
	in.PaymentStatus = trimPtr(in.PaymentStatus)
}

// UpdateOrderStatusInput defines a status change. The value is an open string.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,max=50"`
}

func (in *UpdateOrderStatusInput) Normalize() {
	in.Status = strings.TrimSpace(in.Status)
}

// OrderUsecase defines the order operations.
type OrderUsecase interface {
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	Get(ctx context.Context, id int64) (*entity.Order, error)

	// List returns all orders, or only those of userID when it is non-nil.
	List(ctx context.Context, userID *int64) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error)
}
