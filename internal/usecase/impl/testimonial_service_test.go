package impl

import (
	"context"
	"testing"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/infra/persistence/memory"
	mockSvc "studio/internal/mocks/service"
	"studio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestimonialService_SubmitIsHiddenUntilApproved(t *testing.T) {
	ctx := context.Background()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.StudioEvent) bool { return e.Type == service.EventTestimonialSubmitted })).
		Return(nil)

	svc := NewTestimonialService(memory.NewTestimonialRepository(), publisher, newDiscardLogger())

	created, err := svc.Submit(ctx, &usecase.SubmitTestimonialInput{Name: "Malini", Quote: "Beautiful work", Rating: intPtr(5)})
	require.NoError(t, err)
	assert.False(t, created.IsApproved)

	public, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	approved, err := svc.SetApproval(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	public, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)
}

func TestTestimonialService_SetApprovalNotFound(t *testing.T) {
	svc := NewTestimonialService(memory.NewTestimonialRepository(), mockSvc.NewMockEventPublisher(t), newDiscardLogger())

	_, err := svc.SetApproval(context.Background(), 5, true)
	assert.True(t, errors.Is(err, domainerrors.ErrTestimonialNotFound))
}
