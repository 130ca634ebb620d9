package postgres

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/errors"
	"studio/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = entity.PaymentStatusUnpaid
	}

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrOrderNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Order("id ASC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var orders []model.OrderModel
	if err := query.Find(&orders).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	result := make([]*entity.Order, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderDomain(&orders[i]))
	}

	return result, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	var orderM model.OrderModel
	res := repo.db.WithContext(ctx).
		Model(&orderM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update order status")
	}
	if res.RowsAffected == 0 {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		ServiceID:     data.ServiceID,
		SessionDate:   data.SessionDate,
		Status:        data.Status,
		PaymentStatus: data.PaymentStatus,
		Amount:        data.Amount,
		CreatedAt:     data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ServiceID:     data.ServiceID,
		SessionDate:   data.SessionDate,
		Status:        data.Status,
		PaymentStatus: data.PaymentStatus,
		Amount:        data.Amount,
	}
}
