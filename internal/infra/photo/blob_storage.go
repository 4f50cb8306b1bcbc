// Package photo stores review photos in a blob bucket behind the portable
// gocloud.dev API, so local disk and GCS buckets are interchangeable via the
// bucket URL alone.
package photo

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"strings"
	"time"

	"bokitas/config"
	"bokitas/internal/domain/lifecycle"
	"bokitas/internal/domain/service"
	"bokitas/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket URLs in production
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the photo bucket and returns it as a service.PhotoStorage.
func New(params Params) (service.PhotoStorage, error) {
	if params.Config.Photo == nil {
		return nil, errors.New("photo config is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Photo.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Photo.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the photo under a key derived from the owner and a fresh
// UUID, and returns the public URL it will be served from.
func (s *blobStorage) Upload(ctx context.Context, ownerID uuid.UUID, contentType string, body io.Reader) (string, error) {
	key := objectKey(ownerID, contentType)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open photo writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write photo")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize photo write")
	}

	photoURL := s.publicBaseURL + "/" + key
	s.logger.DebugContext(ctx, "Photo stored",
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return photoURL, nil
}

// objectKey builds a collision-free object key, keeping one directory per
// owner so buckets stay browsable.
func objectKey(ownerID uuid.UUID, contentType string) string {
	ext := ".jpg"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	return ownerID.String() + "/" + time.Now().UTC().Format("20060102") + "-" + uuid.NewString() + ext
}
