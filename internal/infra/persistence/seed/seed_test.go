package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"studio/config"
	"studio/internal/domain/entity"
	"studio/internal/domain/repository"
	"studio/internal/infra/persistence/memory"
	mockRepo "studio/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSeed_LoadsCatalogAndApprovedTestimonials(t *testing.T) {
	ctx := context.Background()
	services := memory.NewServiceRepository()
	testimonials := memory.NewTestimonialRepository()

	result, err := Seed(ctx, services, testimonials)
	require.NoError(t, err)
	assert.Equal(t, Result{Services: 10, Testimonials: 3}, result)

	listed, err := services.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 10)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, "Birthday Photo Shoot - Package 1", listed[0].Name)

	var wedding *entity.Service
	for _, s := range listed {
		if s.Name == "Wedding Full Day" {
			wedding = s
		}
	}
	require.NotNil(t, wedding)
	assert.Equal(t, int64(30000), wedding.Price)
	assert.Equal(t, "Full day", *wedding.Duration)

	approved := true
	public, err := testimonials.List(ctx, repository.TestimonialFilter{Approved: &approved})
	require.NoError(t, err)
	assert.Len(t, public, 3)
}

func TestSeed_SkipsWhenServicesExist(t *testing.T) {
	ctx := context.Background()
	services := memory.NewServiceRepository()
	testimonials := memory.NewTestimonialRepository()
	require.NoError(t, services.Create(ctx, &entity.Service{Name: "Custom", Price: 100}))

	result, err := Seed(ctx, services, testimonials)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	listed, err := services.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	all, err := testimonials.List(ctx, repository.TestimonialFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeed_ApprovalFailureStops(t *testing.T) {
	ctx := context.Background()
	testimonials := mockRepo.NewMockTestimonialRepository(t)
	testimonials.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Testimonial")).
		Run(func(_ context.Context, tm *entity.Testimonial) {
			tm.ID = 1
		}).
		Return(nil).
		Once()
	testimonials.EXPECT().SetApproved(mock.Anything, int64(1), true).
		Return(nil, errors.New("store unavailable")).
		Once()

	result, err := Seed(ctx, memory.NewServiceRepository(), testimonials)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to approve testimonial 1")
	assert.Equal(t, 10, result.Services)
	assert.Equal(t, 0, result.Testimonials)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		enabled      bool
		wantServices int
	}{
		{name: "enabled seeds on start", enabled: true, wantServices: 10},
		{name: "disabled leaves store empty", enabled: false, wantServices: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Seed.Enabled = tt.enabled
			services := memory.NewServiceRepository()
			lc := fxtest.NewLifecycle(t)

			Register(Params{
				Lc:           lc,
				Config:       cfg,
				Services:     services,
				Testimonials: memory.NewTestimonialRepository(),
				Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			lc.RequireStart()
			defer lc.RequireStop()

			listed, err := services.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, listed, tt.wantServices)
		})
	}
}
