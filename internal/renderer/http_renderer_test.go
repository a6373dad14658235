package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/fhuszti/paper-site-go/internal/mock"
)

type item struct {
	Slug string `json:"slug"`
}

func TestRenderCatalog_Cases(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{
			Data: map[string][]byte{"categories": []byte(`[{"slug":"stocks"}]`)},
			Etag: map[string]string{"categories": "\"1234\""},
		}
		r := NewHTTPRenderer(c, time.Minute)
		called := false

		out, etag, err := r.RenderCatalog(ctx, "categories", func(context.Context) (any, error) {
			called = true
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != `[{"slug":"stocks"}]` {
			t.Errorf("raw mismatch: got %s", out)
		}
		if etag != "\"1234\"" {
			t.Errorf("etag mismatch: got %s", etag)
		}
		if called {
			t.Error("loader should not be called on cache hit")
		}
		if c.SetCalled || c.SetEtagCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		r := NewHTTPRenderer(c, 2*time.Minute)
		resp := []item{{Slug: "stocks"}, {Slug: "crypto"}}

		out, etag, err := r.RenderCatalog(ctx, "categories", func(context.Context) (any, error) {
			return resp, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if string(c.Data["categories"]) != string(expected) {
			t.Errorf("cache data mismatch: got %s want %s", c.Data["categories"], expected)
		}
		if c.Etag["categories"] != expEtag {
			t.Errorf("cached etag mismatch: got %s want %s", c.Etag["categories"], expEtag)
		}
		if c.LastTTL != 2*time.Minute {
			t.Errorf("ttl = %s; want 2m", c.LastTTL)
		}
	})

	t.Run("cache read error degrades to miss", func(t *testing.T) {
		c := &mock.Cache{GetErr: errors.New("redis down")}
		r := NewHTTPRenderer(c, 0)

		out, _, err := r.RenderCatalog(ctx, "products", func(context.Context) (any, error) {
			return []item{}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != "[]" {
			t.Errorf("raw = %s; want []", out)
		}
		if c.LastTTL != DefaultTTL {
			t.Errorf("ttl = %s; want default", c.LastTTL)
		}
	})

	t.Run("loader error", func(t *testing.T) {
		c := &mock.Cache{}
		r := NewHTTPRenderer(c, time.Minute)
		loadErr := errors.New("fail")

		_, _, err := r.RenderCatalog(ctx, "products", func(context.Context) (any, error) {
			return nil, loadErr
		})
		if !errors.Is(err, loadErr) {
			t.Fatalf("expected loader error, got %v", err)
		}
		if c.SetCalled {
			t.Error("cache should not be written on loader error")
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		c := &mock.Cache{}
		r := NewHTTPRenderer(c, time.Minute)

		_, _, err := r.RenderCatalog(ctx, "bad", func(context.Context) (any, error) {
			return make(chan int), nil
		})
		if err == nil {
			t.Fatal("expected marshal error")
		}
	})
}
