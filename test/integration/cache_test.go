package integration

import (
	"context"
	"testing"
	"time"

	"github.com/fhuszti/paper-site-go/internal/cache"
	"github.com/fhuszti/paper-site-go/internal/renderer"
)

func TestCatalogCacheIntegration(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(GlobalRedisAddr, "")
	defer func() { _ = c.Close() }()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := c.InvalidateCatalog(ctx); err != nil {
		t.Fatalf("initial invalidate: %v", err)
	}

	calls := 0
	r := renderer.NewHTTPRenderer(c, time.Minute)
	load := func(ctx context.Context) (any, error) {
		calls++
		return []string{"notebooks", "agendas"}, nil
	}

	raw1, etag1, err := r.RenderCatalog(ctx, "categories", load)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	raw2, etag2, err := r.RenderCatalog(ctx, "categories", load)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times; want 1", calls)
	}
	if string(raw1) != string(raw2) || etag1 != etag2 || etag1 == "" {
		t.Errorf("cached response differs: %q/%q vs %q/%q", raw1, etag1, raw2, etag2)
	}

	if err := c.InvalidateCatalog(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, _, err := r.RenderCatalog(ctx, "categories", load); err != nil {
		t.Fatalf("render after invalidate: %v", err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times after invalidate; want 2", calls)
	}
}
