package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// PhotoStorage stores an uploaded binary photo and returns its public URL.
// The upload flow itself (multipart handling, size limits) lives in the
// delivery layer.
type PhotoStorage interface {
	// Upload stores the photo for the owning user and returns a public URL.
	Upload(ctx context.Context, ownerID uuid.UUID, contentType string, body io.Reader) (string, error)
}
