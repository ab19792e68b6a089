package service

import (
	"context"
	"io"
)

// ImageStorage stores product images in an object store.
type ImageStorage interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
