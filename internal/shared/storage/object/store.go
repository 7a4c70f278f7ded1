package object

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned for storage keys or URLs that do not resolve to
// an object under this store.
var ErrInvalidKey = errors.New("invalid storage key")

// ObjectStore defines the contract for saving and retrieving binary objects.
// Keys are opaque to callers; URL and KeyFromURL convert between a key and
// the externally visible file URL so that KeyFromURL(URL(key)) == key.
type ObjectStore interface {
	Save(ctx context.Context, ownerKey string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	URL(storageKey string) string
	KeyFromURL(fileURL string) (string, error)
}
