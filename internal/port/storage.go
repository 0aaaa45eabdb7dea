package port

import "context"

// ObjectInfo describes a stored object without fetching its body.
type ObjectInfo struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
}

// ObjectSource reads documents that already live in object storage.
type ObjectSource interface {
	Head(ctx context.Context, bucket, key string) (*ObjectInfo, error)
	// Download reads the object body. Bodies larger than maxBytes fail with domain.ErrFileTooLarge.
	Download(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error)
}
