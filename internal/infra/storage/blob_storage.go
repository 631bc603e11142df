// Package storage implements the document storage boundary on top of
// gocloud.dev blob buckets, so the same code serves local disk, GCS and S3
// deployments through a single bucket URL.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"neofidu/config"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/lifecycle"
	"neofidu/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	bucket    *blob.Bucket
	bucketURL string
	logger    *slog.Logger
}

// BlobStorageParams holds dependencies for the blob storage service,
// injected by Fx.
type BlobStorageParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and manages its lifecycle.
func NewBlobStorage(params BlobStorageParams) (service.DocumentStorageService, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		bucketURL: params.Config.Storage.BucketURL,
		logger:    params.Logger,
	}, nil
}

// PutFile stores one document under the submission reference. Every object
// carries the reference and category as metadata so a human operator can
// locate the files even if the in-app record is lost.
func (s *blobStorage) PutFile(ctx context.Context, reference string, category entity.DocumentCategory, filename string, data []byte) (string, error) {
	key := path.Join(reference, string(category), filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		Metadata: map[string]string{
			"reference": reference,
			"category":  string(category),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write document")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish document write")
	}

	url := fmt.Sprintf("%s/%s", s.bucketURL, key)
	s.logger.Debug("document stored",
		slog.String("reference", reference),
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return url, nil
}
