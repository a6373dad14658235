package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

type productManagerSrv struct {
	repo       port.ProductRepository
	categories port.CategoryRepository
	media      mediaWorkflow
	newID      port.UUIDGen
	now        func() time.Time
}

// compile-time check: *productManagerSrv must satisfy port.ProductManager
var _ port.ProductManager = (*productManagerSrv)(nil)

func NewProductManager(repo port.ProductRepository, categories port.CategoryRepository, store port.AssetStore, cache port.Cache, newID port.UUIDGen) port.ProductManager {
	return &productManagerSrv{
		repo:       repo,
		categories: categories,
		media:      newMediaWorkflow(store, cache),
		newID:      newID,
		now:        time.Now,
	}
}

func (s *productManagerSrv) CreateProduct(ctx context.Context, in port.ProductInput) (port.SaveResult[*model.Product], error) {
	if err := s.check(ctx, in, uuid.UUID{}); err != nil {
		return port.SaveResult[*model.Product]{}, err
	}

	now := s.now().UTC()
	p := &model.Product{ID: s.newID(), CreatedAt: now}
	applyProduct(p, in, now)

	warnings, err := s.media.save(ctx, ProductFolders, p, in.MediaForm(), func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	})
	if err != nil {
		return port.SaveResult[*model.Product]{}, err
	}

	logger.Infof(ctx, "✅  created product %q (#%s)", p.Slug, p.ID)
	return port.SaveResult[*model.Product]{Entity: p, Warnings: warnings}, nil
}

func (s *productManagerSrv) UpdateProduct(ctx context.Context, id uuid.UUID, in port.ProductInput) (port.SaveResult[*model.Product], error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return port.SaveResult[*model.Product]{}, notFound(err)
	}
	if err := s.check(ctx, in, p.ID); err != nil {
		return port.SaveResult[*model.Product]{}, err
	}

	applyProduct(p, in, s.now().UTC())
	warnings, err := s.media.save(ctx, ProductFolders, p, in.MediaForm(), func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return port.SaveResult[*model.Product]{}, err
	}

	logger.Infof(ctx, "✅  updated product %q (#%s) with %d warning(s)", p.Slug, p.ID, len(warnings))
	return port.SaveResult[*model.Product]{Entity: p, Warnings: warnings}, nil
}

func (s *productManagerSrv) DeleteProduct(ctx context.Context, id uuid.UUID) (port.DeleteResult, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return port.DeleteResult{}, notFound(err)
	}

	warnings, err := s.media.remove(ctx, p, func(ctx context.Context) error {
		return s.repo.Delete(ctx, p.ID)
	})
	if err != nil {
		return port.DeleteResult{}, err
	}

	logger.Infof(ctx, "✅  deleted product %q (#%s)", p.Slug, p.ID)
	return port.DeleteResult{Warnings: warnings}, nil
}

// check validates the input, the slug uniqueness and the owning category.
func (s *productManagerSrv) check(ctx context.Context, in port.ProductInput, self uuid.UUID) error {
	if err := validate("product", in); err != nil {
		return err
	}

	other, err := s.repo.GetBySlug(ctx, in.Slug)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	case other.ID != self:
		return &media.ValidationError{Message: "slug already used", Fields: map[string]string{"slug": "unique"}}
	}

	if _, err := s.categories.GetBySlug(ctx, in.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &media.ValidationError{Message: "unknown category", Fields: map[string]string{"category": "exists"}}
		}
		return err
	}
	return nil
}

func applyProduct(p *model.Product, in port.ProductInput, now time.Time) {
	p.Name = in.Name
	p.Slug = in.Slug
	p.Category = in.Category
	p.Summary = in.Summary
	p.Description = in.Description
	p.Features = in.Features
	p.Featured = in.Featured
	p.SortOrder = in.SortOrder
	p.UpdatedAt = now
}
