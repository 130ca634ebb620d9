package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"studio/config"
	"studio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, "http://localhost:8080/media/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_UploadThenOpen(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage(t)

	obj, err := store.Upload(ctx, "gallery/1760400000000-beach.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "gallery/1760400000000-beach.jpg", obj.Key)
	assert.Equal(t, "http://localhost:8080/media/gallery/1760400000000-beach.jpg", obj.PublicURL)
	assert.Equal(t, int64(len("jpeg-bytes")), obj.Size)

	r, contentType, err := store.Open(ctx, obj.Key)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	_, _, err := newMemStorage(t).Open(context.Background(), "confirmations/missing.pdf")

	assert.True(t, errors.Is(err, service.ErrObjectNotFound))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestBlobStorage_UploadReadFailureLeavesNoObject(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage(t)

	_, err := store.Upload(ctx, "confirmations/1_slip.pdf", "application/pdf", failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client went away")

	_, _, err = store.Open(ctx, "confirmations/1_slip.pdf")
	assert.True(t, errors.Is(err, service.ErrObjectNotFound))
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "gallery/1-a.jpg", want: true},
		{key: "confirmations/1_b.pdf", want: true},
		{key: "", want: false},
		{key: "/etc/passwd", want: false},
		{key: "gallery/../../etc/passwd", want: false},
		{key: "gallery//a.jpg", want: false},
		{key: `gallery\a.jpg`, want: false},
		{key: "./a.jpg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, validKey(tt.key))
		})
	}
}

func TestBlobStorage_InvalidKeyIsNotFound(t *testing.T) {
	_, _, err := newMemStorage(t).Open(context.Background(), "../config.yaml")

	assert.True(t, errors.Is(err, service.ErrObjectNotFound))
}

func TestNewObjectStorage(t *testing.T) {
	t.Run("opens mem bucket", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Blob: &config.BlobConfig{URL: "mem://", PublicBaseURL: "/media"}}

		store, err := NewObjectStorage(Params{Lc: lc, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
		require.NoError(t, err)
		assert.Equal(t, "/media/gallery/x.jpg", store.PublicURL("gallery/x.jpg"))

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewObjectStorage(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}})
		require.Error(t, err)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		cfg := &config.Config{Blob: &config.BlobConfig{URL: "ftp://bucket"}}

		_, err := NewObjectStorage(Params{Lc: fxtest.NewLifecycle(t), Config: cfg})
		require.Error(t, err)
	})
}
