package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the narrow object-store collaborator: listing images
// live in a public bucket, verification documents in a private one read
// through signed URLs.
type ObjectStorage interface {
	// Upload stores the object and returns its key.
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error)
	PublicURL(bucket, key string) string
	SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, bucket, key string) error
}
