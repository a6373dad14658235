package mock

import (
	"context"
	"database/sql"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// CategoryRepo implements port.CategoryRepository for tests.
type CategoryRepo struct {
	Record *model.Category
	Items  []*model.Category

	GetErr    error
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	Created     *model.Category
	Updated     *model.Category
	DeletedID   uuid.UUID
	GotSlug     string
}

func (r *CategoryRepo) List(ctx context.Context) ([]*model.Category, error) {
	return r.Items, r.ListErr
}
func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil {
		return nil, sql.ErrNoRows
	}
	cp := *r.Record
	return &cp, nil
}
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	r.GotSlug = slug
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil || r.Record.Slug != slug {
		return nil, sql.ErrNoRows
	}
	cp := *r.Record
	return &cp, nil
}
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	r.CreateCalls++
	r.Created = c
	return r.CreateErr
}
func (r *CategoryRepo) Update(ctx context.Context, c *model.Category) error {
	r.UpdateCalls++
	r.Updated = c
	return r.UpdateErr
}
func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.DeleteCalls++
	r.DeletedID = id
	return r.DeleteErr
}

// Writes counts every persisted change.
func (r *CategoryRepo) Writes() int { return r.CreateCalls + r.UpdateCalls + r.DeleteCalls }

// ProductRepo implements port.ProductRepository for tests.
type ProductRepo struct {
	Record *model.Product
	Items  []*model.Product

	GetErr    error
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	Created     *model.Product
	Updated     *model.Product
	DeletedID   uuid.UUID
	Filter      port.ProductFilter
}

func (r *ProductRepo) List(ctx context.Context, f port.ProductFilter) ([]*model.Product, error) {
	r.Filter = f
	return r.Items, r.ListErr
}
func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil {
		return nil, sql.ErrNoRows
	}
	cp := *r.Record
	return &cp, nil
}
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil || r.Record.Slug != slug {
		return nil, sql.ErrNoRows
	}
	cp := *r.Record
	return &cp, nil
}
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	r.CreateCalls++
	r.Created = p
	return r.CreateErr
}
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	r.UpdateCalls++
	r.Updated = p
	return r.UpdateErr
}
func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.DeleteCalls++
	r.DeletedID = id
	return r.DeleteErr
}

func (r *ProductRepo) Writes() int { return r.CreateCalls + r.UpdateCalls + r.DeleteCalls }

// ContentRepo implements port.ContentRepository for tests.
type ContentRepo struct {
	Record *model.ContentSection

	GetErr    error
	UpsertErr error

	UpsertCalls int
	Upserted    *model.ContentSection
}

func (r *ContentRepo) GetByKey(ctx context.Context, key string) (*model.ContentSection, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil || r.Record.Key != key {
		return nil, sql.ErrNoRows
	}
	cp := *r.Record
	return &cp, nil
}
func (r *ContentRepo) Upsert(ctx context.Context, c *model.ContentSection) error {
	r.UpsertCalls++
	r.Upserted = c
	return r.UpsertErr
}

// LeadRepo implements port.LeadRepository for tests.
type LeadRepo struct {
	Record *model.Lead
	Items  []*model.Lead

	CreateErr   error
	GetErr      error
	ListErr     error
	NotifiedErr error
	DeleteErr   error

	Created        *model.Lead
	NotifiedCalled bool
	DeleteCalled   bool
	DeletedID      uuid.UUID
}

func (r *LeadRepo) Create(ctx context.Context, l *model.Lead) error {
	r.Created = l
	return r.CreateErr
}
func (r *LeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Record == nil {
		return nil, sql.ErrNoRows
	}
	return r.Record, nil
}
func (r *LeadRepo) List(ctx context.Context) ([]*model.Lead, error) {
	return r.Items, r.ListErr
}
func (r *LeadRepo) MarkNotified(ctx context.Context, id uuid.UUID) error {
	r.NotifiedCalled = true
	return r.NotifiedErr
}
func (r *LeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.DeleteCalled = true
	r.DeletedID = id
	return r.DeleteErr
}
