package service

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for storing uploaded files. The auth
// core only consumes the reference string a successful upload returns.
type ObjectStorage interface {
	// Upload stores the object under the given key and returns nil on success.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Exists reports whether an object is stored under the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}
