package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by Open when no object is stored under the key.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject describes a file accepted by the object storage.
type StoredObject struct {
	Key       string
	PublicURL string
	Size      int64
}

// ObjectStorage is the file collaborator used by the booking and gallery flows.
// Upload either succeeds with a location handle or fails with a descriptive error.
type ObjectStorage interface {
	// Upload stores body under key and returns its public location.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (*StoredObject, error)

	// Open returns a reader for a stored object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// PublicURL builds the public link for key without touching the bucket.
	PublicURL(key string) string
}
