package interfaces

import (
	"context"
	"io"
)

// IObjectStore stores attachment uploads and generated process documents.
type IObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
