package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	Data map[string][]byte
	Etag map[string]string

	// errors
	GetErr        error
	GetEtagErr    error
	InvalidateErr error

	// call flags
	GetCalled        bool
	GetEtagCalled    bool
	SetCalled        bool
	SetEtagCalled    bool
	InvalidateCalled int
	LastTTL          time.Duration
}

func (c *Cache) GetCatalog(ctx context.Context, key string) ([]byte, error) {
	c.GetCalled = true
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.Data[key], nil
}

func (c *Cache) GetEtagCatalog(ctx context.Context, key string) (string, error) {
	c.GetEtagCalled = true
	if c.GetEtagErr != nil {
		return "", c.GetEtagErr
	}
	return c.Etag[key], nil
}

func (c *Cache) SetCatalog(ctx context.Context, key string, data []byte, ttl time.Duration) {
	c.SetCalled = true
	c.LastTTL = ttl
	if c.Data == nil {
		c.Data = map[string][]byte{}
	}
	c.Data[key] = data
}

func (c *Cache) SetEtagCatalog(ctx context.Context, key string, etag string, ttl time.Duration) {
	c.SetEtagCalled = true
	if c.Etag == nil {
		c.Etag = map[string]string{}
	}
	c.Etag[key] = etag
}

func (c *Cache) InvalidateCatalog(ctx context.Context) error {
	c.InvalidateCalled++
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	c.Data = nil
	c.Etag = nil
	return nil
}
