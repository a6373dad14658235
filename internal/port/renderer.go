package port

import "context"

// CatalogLoader produces the value rendered for one catalog cache key.
type CatalogLoader func(ctx context.Context) (any, error)

// HTTPRenderer mediates between HTTP handlers and the catalog reader use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderCatalog returns the cached JSON for key and its ETag if available or
	// runs load and caches the output otherwise.
	RenderCatalog(ctx context.Context, key string, load CatalogLoader) ([]byte, string, error)
}
