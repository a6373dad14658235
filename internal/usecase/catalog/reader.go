package catalog

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

type catalogReaderSrv struct {
	categories port.CategoryRepository
	products   port.ProductRepository
	content    port.ContentRepository
}

// compile-time check: *catalogReaderSrv must satisfy port.CatalogReader
var _ port.CatalogReader = (*catalogReaderSrv)(nil)

func NewCatalogReader(categories port.CategoryRepository, products port.ProductRepository, content port.ContentRepository) port.CatalogReader {
	return &catalogReaderSrv{categories: categories, products: products, content: content}
}

func (s *catalogReaderSrv) ListCategories(ctx context.Context) ([]*model.Category, error) {
	out, err := s.categories.List(ctx)
	if out == nil && err == nil {
		out = []*model.Category{}
	}
	return out, err
}

func (s *catalogReaderSrv) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *catalogReaderSrv) ListProducts(ctx context.Context, f port.ProductFilter) ([]*model.Product, error) {
	out, err := s.products.List(ctx, f)
	if out == nil && err == nil {
		out = []*model.Product{}
	}
	return out, err
}

func (s *catalogReaderSrv) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *catalogReaderSrv) GetContent(ctx context.Context, key string) (*model.ContentSection, error) {
	c, err := s.content.GetByKey(ctx, key)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}
