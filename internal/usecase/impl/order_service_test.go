package impl

import (
	"context"
	"testing"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	mockRepo "studio/internal/mocks/repository"
	mockSvc "studio/internal/mocks/service"
	"studio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, publisher, newDiscardLogger()),
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_Create_DefaultsStates(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = 1 }).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.StudioEvent) bool {
			return e.Type == service.EventOrderCreated && e.EntityID == 1 && e.EventID != ""
		})).
		Return(nil)

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{ServiceID: int64Ptr(1), Amount: int64Ptr(15000)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, int64(15000), *order.Amount)
}

func TestOrderService_Create_KeepsGivenStates(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{Status: strPtr("confirmed"), PaymentStatus: strPtr("paid")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", order.Status)
	assert.Equal(t, "paid", order.PaymentStatus)
}

func TestOrderService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Create_RepositoryError(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(errors.New("disk full"))

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{})
	assert.Error(t, err)
	assert.Nil(t, order)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "updated", repoErr: nil, wantErr: nil},
		{name: "missing order", repoErr: errors.WithStack(repository.ErrOrderNotFound), wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			var updated *entity.Order
			if tt.repoErr == nil {
				updated = &entity.Order{ID: 3, Status: "anything-goes"}
			}
			fx.orderRepo.EXPECT().UpdateStatus(ctx, int64(3), "anything-goes").Return(updated, tt.repoErr)

			order, err := fx.service.UpdateStatus(ctx, 3, "anything-goes")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, order)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "anything-goes", order.Status)
		})
	}
}

func TestOrderService_GetAndList(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, errors.WithStack(repository.ErrOrderNotFound))
	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{UserID: int64Ptr(2)}).
		Return([]*entity.Order{{ID: 1, UserID: int64Ptr(2)}}, nil)

	_, err := fx.service.Get(ctx, 9)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())

	orders, err := fx.service.List(ctx, int64Ptr(2))
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
