package impl

import (
	"context"
	"fmt"
	"log/slog"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
	events    eventEmitter
}

// NewOrderService creates the order usecase.
func NewOrderService(orderRepo repository.OrderRepository, publisher service.EventPublisher, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		events:    newEventEmitter(publisher, logger),
	}
}

// Create stores an order. References are not checked; blank states fall back to pending/unpaid.
func (s *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		UserID:        input.UserID,
		ServiceID:     input.ServiceID,
		SessionDate:   input.SessionDate,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Amount:        input.Amount,
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		order.PaymentStatus = *input.PaymentStatus
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	s.events.emit(ctx, service.EventOrderCreated, order.ID, orderSummary(order))

	return order, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (s *orderService) List(ctx context.Context, userID *int64) ([]*entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{UserID: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus accepts any status string; there is no transition table.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return order, nil
}

func orderSummary(order *entity.Order) string {
	summary := "status " + order.Status
	if order.ServiceID != nil {
		summary = fmt.Sprintf("service %d, %s", *order.ServiceID, summary)
	}
	if order.Amount != nil {
		summary = fmt.Sprintf("%s, amount %d", summary, *order.Amount)
	}

	return summary
}
