// Package storage stores product images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"pharmacy/config"
	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket. Object URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// StorageParams holds dependencies for ImageStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params StorageParams) (service.ImageStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if sc := params.Config.Storage; sc != nil {
		if sc.BucketURL != "" {
			bucketURL = sc.BucketURL
		}
		publicBaseURL = sc.PublicBaseURL
	}

	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Image storage not configured, using in-memory bucket")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open image bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, publicBaseURL), nil
}

// Upload writes the object and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicURL(key), nil
}

// Delete removes the object. Missing objects are ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
