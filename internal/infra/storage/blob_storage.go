// Package storage implements the object storage collaborator on gocloud.dev buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"studio/config"
	"studio/internal/domain/lifecycle"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params holds the dependencies of the object storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on stop.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	if params.Config.Blob == nil || params.Config.Blob.URL == "" {
		return nil, errors.New("blob bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Blob.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Blob.URL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, params.Config.Blob.PublicBaseURL, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (*service.StoredObject, error) {
	if !validKey(key) {
		return nil, errors.Errorf("invalid object key %q", key)
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	size, err := io.Copy(w, body)
	if err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.Debug("Object stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(size)),
	)

	return &service.StoredObject{
		Key:       key,
		PublicURL: s.PublicURL(key),
		Size:      size,
	}, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !validKey(key) {
		return nil, "", errors.WithStack(service.ErrObjectNotFound)
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.WithStack(service.ErrObjectNotFound)
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// validKey rejects keys that could escape the bucket root on file-backed buckets.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}

	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}

	return true
}
