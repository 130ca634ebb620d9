package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

func createTestGalleryService(t *testing.T) (*galleryService, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)

	svc, ok := NewGalleryService(GalleryServiceParams{
		GalleryRepo: memory.NewGalleryRepository(),
		Storage:     storage,
		Logger:      newDiscardLogger(),
	}).(*galleryService)
	require.True(t, ok)
	svc.now = fixedClock(time.UnixMilli(1760400000000))

	return svc, storage
}

func TestGalleryService_UploadAndList(t *testing.T) {
	svc, storage := createTestGalleryService(t)
	ctx := context.Background()

	const key = "gallery/1760400000000-kandy.jpg"
	storage.EXPECT().
		Upload(ctx, key, "image/jpeg", mock.Anything).
		Return(&service.StoredObject{Key: key, PublicURL: "http://localhost:8080/media/" + key}, nil)

	image, err := svc.UploadImage(ctx, &usecase.UploadGalleryImageInput{
		Category:    "wedding",
		FileName:    "kandy.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), image.ID)
	assert.Equal(t, "http://localhost:8080/media/"+key, image.ImageURL)
	require.NotNil(t, image.Description)
	assert.Equal(t, "kandy.jpg", *image.Description)

	weddings, err := svc.ListImages(ctx, "wedding")
	require.NoError(t, err)
	assert.Len(t, weddings, 1)

	birthdays, err := svc.ListImages(ctx, "birthday")
	require.NoError(t, err)
	assert.Empty(t, birthdays)

	all, err := svc.ListImages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGalleryService_UploadFailureInsertsNothing(t *testing.T) {
	svc, storage := createTestGalleryService(t)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("denied"))

	_, err := svc.UploadImage(ctx, &usecase.UploadGalleryImageInput{Category: "event", FileName: "a.jpg", Body: strings.NewReader("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))

	all, err := svc.ListImages(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGalleryService_GetImageNotFound(t *testing.T) {
	svc, _ := createTestGalleryService(t)

	_, err := svc.GetImage(context.Background(), 12)
	assert.True(t, errors.Is(err, domainerrors.ErrGalleryImageNotFound))
}
