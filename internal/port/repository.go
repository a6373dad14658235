package port

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// Lookups return sql.ErrNoRows when nothing matches.

type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductFilter struct {
	Category string
	Featured bool
}

type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentRepository interface {
	GetByKey(ctx context.Context, key string) (*model.ContentSection, error)
	Upsert(ctx context.Context, c *model.ContentSection) error
}

type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context) ([]*model.Lead, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
