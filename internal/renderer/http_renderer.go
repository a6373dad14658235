package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/port"
)

const DefaultTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation. A non-positive
// ttl falls back to DefaultTTL.
func NewHTTPRenderer(cache port.Cache, ttl time.Duration) port.HTTPRenderer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &httpRenderer{cache: cache, ttl: ttl}
}

// RenderCatalog serves key from cache or runs load and caches its output.
// It returns the JSON encoded output and a quoted ETag string. Cache read
// failures degrade to a miss.
func (r *httpRenderer) RenderCatalog(ctx context.Context, key string, load port.CatalogLoader) ([]byte, string, error) {
	raw, err := r.cache.GetCatalog(ctx, key)
	etag, errEtag := r.cache.GetEtagCatalog(ctx, key)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		metrics.CatalogCache.WithLabelValues("hit").Inc()
		return raw, etag, nil
	}
	if err != nil || errEtag != nil {
		logger.Warnf(ctx, "⚠️  catalog cache read failed for %q: %v", key, firstErr(err, errEtag))
	}
	metrics.CatalogCache.WithLabelValues("miss").Inc()

	out, err := load(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetCatalog(ctx, key, raw, r.ttl)
	r.cache.SetEtagCatalog(ctx, key, etag, r.ttl)

	return raw, etag, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
