package storage

import (
	"context"
	"io"
)

// Store defines the interface for binary object storage used by product
// image uploads.
type Store interface {
	// Save writes content under the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Open returns a reader for the object at the given relative path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes the object at the given relative path. Removing a
	// missing object is not an error.
	Remove(ctx context.Context, path string) error
}
