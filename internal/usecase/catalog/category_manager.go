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

type categoryManagerSrv struct {
	repo     port.CategoryRepository
	products port.ProductRepository
	media    mediaWorkflow
	newID    port.UUIDGen
	now      func() time.Time
}

// compile-time check: *categoryManagerSrv must satisfy port.CategoryManager
var _ port.CategoryManager = (*categoryManagerSrv)(nil)

func NewCategoryManager(repo port.CategoryRepository, products port.ProductRepository, store port.AssetStore, cache port.Cache, newID port.UUIDGen) port.CategoryManager {
	return &categoryManagerSrv{
		repo:     repo,
		products: products,
		media:    newMediaWorkflow(store, cache),
		newID:    newID,
		now:      time.Now,
	}
}

func (s *categoryManagerSrv) CreateCategory(ctx context.Context, in port.CategoryInput) (port.SaveResult[*model.Category], error) {
	if err := validate("category", in); err != nil {
		return port.SaveResult[*model.Category]{}, err
	}
	if err := s.checkSlugFree(ctx, in.Slug, uuid.UUID{}); err != nil {
		return port.SaveResult[*model.Category]{}, err
	}

	now := s.now().UTC()
	c := &model.Category{ID: s.newID(), CreatedAt: now}
	applyCategory(c, in, now)

	warnings, err := s.media.save(ctx, CategoryFolders, c, in.MediaForm(), func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return port.SaveResult[*model.Category]{}, err
	}

	logger.Infof(ctx, "✅  created category %q (#%s)", c.Slug, c.ID)
	return port.SaveResult[*model.Category]{Entity: c, Warnings: warnings}, nil
}

func (s *categoryManagerSrv) UpdateCategory(ctx context.Context, id uuid.UUID, in port.CategoryInput) (port.SaveResult[*model.Category], error) {
	if err := validate("category", in); err != nil {
		return port.SaveResult[*model.Category]{}, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return port.SaveResult[*model.Category]{}, notFound(err)
	}
	if in.Slug != c.Slug {
		if err := s.checkSlugFree(ctx, in.Slug, c.ID); err != nil {
			return port.SaveResult[*model.Category]{}, err
		}
		if err := s.checkUnused(ctx, c.Slug); err != nil {
			return port.SaveResult[*model.Category]{}, err
		}
	}

	applyCategory(c, in, s.now().UTC())
	warnings, err := s.media.save(ctx, CategoryFolders, c, in.MediaForm(), func(ctx context.Context) error {
		return s.repo.Update(ctx, c)
	})
	if err != nil {
		return port.SaveResult[*model.Category]{}, err
	}

	logger.Infof(ctx, "✅  updated category %q (#%s) with %d warning(s)", c.Slug, c.ID, len(warnings))
	return port.SaveResult[*model.Category]{Entity: c, Warnings: warnings}, nil
}

func (s *categoryManagerSrv) DeleteCategory(ctx context.Context, id uuid.UUID) (port.DeleteResult, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return port.DeleteResult{}, notFound(err)
	}
	if err := s.checkUnused(ctx, c.Slug); err != nil {
		return port.DeleteResult{}, err
	}

	warnings, err := s.media.remove(ctx, c, func(ctx context.Context) error {
		return s.repo.Delete(ctx, c.ID)
	})
	if err != nil {
		return port.DeleteResult{}, err
	}

	logger.Infof(ctx, "✅  deleted category %q (#%s)", c.Slug, c.ID)
	return port.DeleteResult{Warnings: warnings}, nil
}

func (s *categoryManagerSrv) checkSlugFree(ctx context.Context, slug string, self uuid.UUID) error {
	other, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != self {
		return &media.ValidationError{Message: "slug already used", Fields: map[string]string{"slug": "unique"}}
	}
	return nil
}

func (s *categoryManagerSrv) checkUnused(ctx context.Context, slug string) error {
	products, err := s.products.List(ctx, port.ProductFilter{Category: slug})
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return ErrCategoryInUse
	}
	return nil
}

func applyCategory(c *model.Category, in port.CategoryInput, now time.Time) {
	c.Name = in.Name
	c.Slug = in.Slug
	c.Description = in.Description
	c.SortOrder = in.SortOrder
	c.UpdatedAt = now
}
