package mock

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	Raw  []byte
	Etag string
	Err  error

	// RunLoader makes the renderer call the loader and surface its error.
	RunLoader bool

	Called  bool
	LastKey string
}

func (m *HTTPRenderer) RenderCatalog(ctx context.Context, key string, load port.CatalogLoader) ([]byte, string, error) {
	m.Called = true
	m.LastKey = key
	if m.RunLoader {
		if _, err := load(ctx); err != nil {
			return nil, "", err
		}
	}
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Raw, m.Etag, nil
}
