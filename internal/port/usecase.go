package port

import (
	"context"
	"io"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// SignatureIssuer signs direct uploads for the admin browser.
type SignatureIssuer interface {
	IssueSignature(ctx context.Context, in GenerateSignatureInput) (cloudinary.Signature, error)
}
type GenerateSignatureInput struct {
	Folder       string `json:"folder"`
	ResourceType string `json:"resource_type"`
}

// MediaDeleter removes one asset from the CDN using server-held credentials.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, in DeleteMediaInput) (cloudinary.DestroyResult, error)
}
type DeleteMediaInput struct {
	PublicID     string `json:"public_id" validate:"required"`
	ResourceType string `json:"resource_type" validate:"omitempty,oneof=image video"`
}

// FileUpload is one file received from the admin form.
type FileUpload struct {
	Filename string
	Size     int64
	Content  io.ReadSeeker
}

// MediaFiles groups the files uploaded with an entity save.
type MediaFiles struct {
	Image   *FileUpload
	Gallery []FileUpload
	Videos  []FileUpload
}

// MediaForm is the media part of an admin form: what the editor kept plus
// what it uploaded.
type MediaForm struct {
	ImageURL    string
	RemoveImage bool
	Gallery     []string
	Videos      []model.Video
	Files       MediaFiles
}

// SaveResult is returned by every media-bearing save. Warnings list assets
// that could not be cleaned up.
type SaveResult[T any] struct {
	Entity   T         `json:"entity"`
	Warnings []Warning `json:"warnings"`
}

// DeleteResult is returned by every media-bearing delete.
type DeleteResult struct {
	Warnings []Warning `json:"warnings"`
}

type CategoryInput struct {
	Name          string        `json:"name" validate:"required,max=120"`
	Slug          string        `json:"slug" validate:"required,max=120,slug"`
	Description   string        `json:"description" validate:"max=5000"`
	SortOrder     int           `json:"sort_order"`
	ImageURL      string        `json:"image_url" validate:"omitempty,url"`
	RemoveImage   bool          `json:"remove_image"`
	GalleryImages []string      `json:"galleryImages" validate:"dive,url"`
	Videos        []model.Video `json:"videos" validate:"dive"`
	Files         MediaFiles    `json:"-"`
}

func (in CategoryInput) MediaForm() MediaForm {
	return MediaForm{ImageURL: in.ImageURL, RemoveImage: in.RemoveImage, Gallery: in.GalleryImages, Videos: in.Videos, Files: in.Files}
}

// CategoryManager handles admin writes on categories.
type CategoryManager interface {
	CreateCategory(ctx context.Context, in CategoryInput) (SaveResult[*model.Category], error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (SaveResult[*model.Category], error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (DeleteResult, error)
}

type ProductInput struct {
	Name         string        `json:"name" validate:"required,max=120"`
	Slug         string        `json:"slug" validate:"required,max=120,slug"`
	Category     string        `json:"category" validate:"required"`
	Summary      string        `json:"summary" validate:"max=500"`
	Description  string        `json:"description" validate:"max=10000"`
	Features     []string      `json:"features" validate:"dive,required,max=200"`
	Featured     bool          `json:"featured"`
	SortOrder    int           `json:"sort_order"`
	ImageURL     string        `json:"image_url" validate:"omitempty,url"`
	RemoveImage  bool          `json:"remove_image"`
	ImageGallery []string      `json:"image_gallery" validate:"dive,url"`
	Videos       []model.Video `json:"videos" validate:"dive"`
	Files        MediaFiles    `json:"-"`
}

func (in ProductInput) MediaForm() MediaForm {
	return MediaForm{ImageURL: in.ImageURL, RemoveImage: in.RemoveImage, Gallery: in.ImageGallery, Videos: in.Videos, Files: in.Files}
}

// ProductManager handles admin writes on products.
type ProductManager interface {
	CreateProduct(ctx context.Context, in ProductInput) (SaveResult[*model.Product], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in ProductInput) (SaveResult[*model.Product], error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (DeleteResult, error)
}

type ContentInput struct {
	Title         string        `json:"title" validate:"required,max=200"`
	Body          string        `json:"body" validate:"max=20000"`
	ImageURL      string        `json:"image_url" validate:"omitempty,url"`
	RemoveImage   bool          `json:"remove_image"`
	GalleryImages []string      `json:"galleryImages" validate:"dive,url"`
	Videos        []model.Video `json:"videos" validate:"dive"`
	Files         MediaFiles    `json:"-"`
}

func (in ContentInput) MediaForm() MediaForm {
	return MediaForm{ImageURL: in.ImageURL, RemoveImage: in.RemoveImage, Gallery: in.GalleryImages, Videos: in.Videos, Files: in.Files}
}

// ContentManager upserts site content sections by key.
type ContentManager interface {
	UpsertContent(ctx context.Context, key string, in ContentInput) (SaveResult[*model.ContentSection], error)
}

// CatalogReader serves the public, read-only view of the catalog.
type CatalogReader interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, slug string) (*model.Category, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, slug string) (*model.Product, error)
	GetContent(ctx context.Context, key string) (*model.ContentSection, error)
}

type LeadInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"max=40"`
	Company string `json:"company" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
	Source  string `json:"source" validate:"max=100"`
}

// LeadSubmitter records a public contact request.
type LeadSubmitter interface {
	SubmitLead(ctx context.Context, in LeadInput) (*model.Lead, error)
}

// LeadManager serves the admin view of leads.
type LeadManager interface {
	ListLeads(ctx context.Context) ([]*model.Lead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
}

// LeadNotifier emails the sales inbox about one lead.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, id uuid.UUID) error
}
