package port

import (
	"context"
	"time"
)

// Cache stores rendered public catalog responses and their ETags.
type Cache interface {
	GetCatalog(ctx context.Context, key string) ([]byte, error)
	GetEtagCatalog(ctx context.Context, key string) (string, error)
	SetCatalog(ctx context.Context, key string, data []byte, ttl time.Duration)
	SetEtagCatalog(ctx context.Context, key string, etag string, ttl time.Duration)
	// InvalidateCatalog drops every cached catalog response.
	InvalidateCatalog(ctx context.Context) error
}
