package impl

import (
	"context"
	"encoding/json"
	"testing"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	mockRepo "studio/internal/mocks/repository"
	"studio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetService(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantErrIs error
	}{
		{name: "found"},
		{name: "missing maps to not found", repoErr: repository.ErrServiceNotFound, wantErrIs: domainerrors.ErrServiceNotFound},
		{name: "storage failure passes through", repoErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockServiceRepository(t)
			var found *entity.Service
			if tt.repoErr == nil {
				found = &entity.Service{ID: 3, Name: "Wedding Full Day", Price: 30000}
			}
			repo.EXPECT().FindByID(mock.Anything, int64(3)).Return(found, tt.repoErr)

			svc, err := NewCatalogService(repo).GetService(context.Background(), 3)

			switch {
			case tt.repoErr == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(30000), svc.Price)
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			default:
				require.Error(t, err)
				assert.False(t, errors.Is(err, domainerrors.ErrServiceNotFound))
			}
		})
	}
}

func TestCatalogService_CreateService(t *testing.T) {
	repo := mockRepo.NewMockServiceRepository(t)
	details := json.RawMessage(`{"photos":40}`)

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, s *entity.Service) { s.ID = 11 }).
		Return(nil)

	svc, err := NewCatalogService(repo).CreateService(context.Background(), &usecase.CreateServiceInput{
		Name:     "Graduation",
		Price:    int64Ptr(12000),
		Duration: strPtr("2 hours"),
		Details:  details,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), svc.ID)
	assert.Equal(t, int64(12000), svc.Price)
	assert.Equal(t, "2 hours", *svc.Duration)
	assert.JSONEq(t, `{"photos":40}`, string(svc.Details))
}

func TestCatalogService_ListServicesError(t *testing.T) {
	repo := mockRepo.NewMockServiceRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewCatalogService(repo).ListServices(context.Background())

	assert.ErrorContains(t, err, "failed to list services")
}
