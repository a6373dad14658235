package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// SignatureIssuer implements port.SignatureIssuer for tests.
type SignatureIssuer struct {
	Out    cloudinary.Signature
	Err    error
	Called bool
	In     port.GenerateSignatureInput
}

func (m *SignatureIssuer) IssueSignature(ctx context.Context, in port.GenerateSignatureInput) (cloudinary.Signature, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return cloudinary.Signature{}, m.Err
	}
	return m.Out, nil
}

// MediaDeleter implements port.MediaDeleter for tests.
type MediaDeleter struct {
	Out    cloudinary.DestroyResult
	Err    error
	Called bool
	In     port.DeleteMediaInput
}

func (m *MediaDeleter) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) (cloudinary.DestroyResult, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return "", m.Err
	}
	return m.Out, nil
}

// CategoryManager implements port.CategoryManager for tests.
type CategoryManager struct {
	Out       port.SaveResult[*model.Category]
	DeleteOut port.DeleteResult
	Err       error

	CreateCalled bool
	UpdateCalled bool
	DeleteCalled bool
	ID           uuid.UUID
	In           port.CategoryInput
}

func (m *CategoryManager) CreateCategory(ctx context.Context, in port.CategoryInput) (port.SaveResult[*model.Category], error) {
	m.CreateCalled = true
	m.In = in
	return m.Out, m.Err
}
func (m *CategoryManager) UpdateCategory(ctx context.Context, id uuid.UUID, in port.CategoryInput) (port.SaveResult[*model.Category], error) {
	m.UpdateCalled = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}
func (m *CategoryManager) DeleteCategory(ctx context.Context, id uuid.UUID) (port.DeleteResult, error) {
	m.DeleteCalled = true
	m.ID = id
	return m.DeleteOut, m.Err
}

// ProductManager implements port.ProductManager for tests.
type ProductManager struct {
	Out       port.SaveResult[*model.Product]
	DeleteOut port.DeleteResult
	Err       error

	CreateCalled bool
	UpdateCalled bool
	DeleteCalled bool
	ID           uuid.UUID
	In           port.ProductInput
}

func (m *ProductManager) CreateProduct(ctx context.Context, in port.ProductInput) (port.SaveResult[*model.Product], error) {
	m.CreateCalled = true
	m.In = in
	return m.Out, m.Err
}
func (m *ProductManager) UpdateProduct(ctx context.Context, id uuid.UUID, in port.ProductInput) (port.SaveResult[*model.Product], error) {
	m.UpdateCalled = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}
func (m *ProductManager) DeleteProduct(ctx context.Context, id uuid.UUID) (port.DeleteResult, error) {
	m.DeleteCalled = true
	m.ID = id
	return m.DeleteOut, m.Err
}

// ContentManager implements port.ContentManager for tests.
type ContentManager struct {
	Out    port.SaveResult[*model.ContentSection]
	Err    error
	Called bool
	Key    string
	In     port.ContentInput
}

func (m *ContentManager) UpsertContent(ctx context.Context, key string, in port.ContentInput) (port.SaveResult[*model.ContentSection], error) {
	m.Called = true
	m.Key = key
	m.In = in
	return m.Out, m.Err
}

// CatalogReader implements port.CatalogReader for tests.
type CatalogReader struct {
	Categories []*model.Category
	Category   *model.Category
	Products   []*model.Product
	Product    *model.Product
	Content    *model.ContentSection
	Err        error

	Called bool
	Slug   string
	Filter port.ProductFilter
}

func (m *CatalogReader) ListCategories(ctx context.Context) ([]*model.Category, error) {
	m.Called = true
	return m.Categories, m.Err
}
func (m *CatalogReader) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	m.Called = true
	m.Slug = slug
	return m.Category, m.Err
}
func (m *CatalogReader) ListProducts(ctx context.Context, f port.ProductFilter) ([]*model.Product, error) {
	m.Called = true
	m.Filter = f
	return m.Products, m.Err
}
func (m *CatalogReader) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	m.Called = true
	m.Slug = slug
	return m.Product, m.Err
}
func (m *CatalogReader) GetContent(ctx context.Context, key string) (*model.ContentSection, error) {
	m.Called = true
	m.Slug = key
	return m.Content, m.Err
}

// LeadSubmitter implements port.LeadSubmitter for tests.
type LeadSubmitter struct {
	Out    *model.Lead
	Err    error
	Called bool
	In     port.LeadInput
}

func (m *LeadSubmitter) SubmitLead(ctx context.Context, in port.LeadInput) (*model.Lead, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// LeadManager implements port.LeadManager for tests.
type LeadManager struct {
	Leads        []*model.Lead
	Err          error
	ListCalled   bool
	DeleteCalled bool
	ID           uuid.UUID
}

func (m *LeadManager) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	m.ListCalled = true
	return m.Leads, m.Err
}
func (m *LeadManager) DeleteLead(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.ID = id
	return m.Err
}

// LeadNotifier implements port.LeadNotifier for tests. It is safe to call
// from another goroutine; Done, when set, receives after each call.
type LeadNotifier struct {
	Err  error
	Done chan struct{}

	mu     sync.Mutex
	Called bool
	ID     uuid.UUID
}

func (m *LeadNotifier) NotifyLead(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.Called = true
	m.ID = id
	m.mu.Unlock()
	if m.Done != nil {
		m.Done <- struct{}{}
	}
	return m.Err
}

func (m *LeadNotifier) LastID() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ID
}
