package cache

import (
	"context"
	"time"

	"github.com/fhuszti/paper-site-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetCatalog(ctx context.Context, key string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagCatalog(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetCatalog(ctx context.Context, key string, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagCatalog(ctx context.Context, key string, etag string, ttl time.Duration) {
}

func (n *NoopCache) InvalidateCatalog(ctx context.Context) error { return nil }
