package mariadb

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

const productColumns = `id, name, slug, category_slug, summary, description, features, image_url, image_gallery, videos, featured, sort_order, created_at, updated_at`

type ProductRepository struct {
	db *sql.DB
}

// compile-time check: *ProductRepository must satisfy port.ProductRepository
var _ port.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, f port.ProductFilter) ([]*model.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		where = append(where, "category_slug = ?")
		args = append(args, f.Category)
	}
	if f.Featured {
		where = append(where, "featured = TRUE")
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY sort_order, name`

	return queryAll(ctx, r.db, scanProduct, query, args...)
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	logger.Debugf(ctx, "fetching product #%s from the database...", id)

	const query = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE slug = ?`
	return scanProduct(r.db.QueryRowContext(ctx, query, slug))
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	logger.Debugf(ctx, "creating database record for product %q...", p.Slug)

	const query = `
      INSERT INTO products
        (id, name, slug, category_slug, summary, description, features, image_url, image_gallery, videos, featured, sort_order, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Category,
		p.Summary, p.Description, p.Features,
		p.ImageURL, p.ImageGallery, p.Videos,
		p.Featured, p.SortOrder, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	logger.Debugf(ctx, "updating database record for product #%s...", p.ID)

	const query = `
      UPDATE products
      SET
        name          = ?,
        slug          = ?,
        category_slug = ?,
        summary       = ?,
        description   = ?,
        features      = ?,
        image_url     = ?,
        image_gallery = ?,
        videos        = ?,
        featured      = ?,
        sort_order    = ?,
        updated_at    = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Slug, p.Category,
		p.Summary, p.Description, p.Features,
		p.ImageURL, p.ImageGallery, p.Videos,
		p.Featured, p.SortOrder, p.UpdatedAt,
		p.ID, // WHERE clause
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting product #%s from the database...", id)
	return execOne(ctx, r.db, `DELETE FROM products WHERE id = ?`, id)
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Category,
		&p.Summary, &p.Description, &p.Features,
		&p.ImageURL, &p.ImageGallery, &p.Videos,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
