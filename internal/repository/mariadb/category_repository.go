package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

const categoryColumns = `id, name, slug, description, image_url, gallery_images, videos, sort_order, created_at, updated_at`

type CategoryRepository struct {
	db *sql.DB
}

// compile-time check: *CategoryRepository must satisfy port.CategoryRepository
var _ port.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order, name`
	return queryAll(ctx, r.db, scanCategory, query)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	logger.Debugf(ctx, "fetching category #%s from the database...", id)

	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	return scanCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = ?`
	return scanCategory(r.db.QueryRowContext(ctx, query, slug))
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	logger.Debugf(ctx, "creating database record for category %q...", c.Slug)

	const query = `
      INSERT INTO categories
        (id, name, slug, description, image_url, gallery_images, videos, sort_order, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Slug, c.Description,
		c.ImageURL, c.GalleryImages, c.Videos,
		c.SortOrder, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	logger.Debugf(ctx, "updating database record for category #%s...", c.ID)

	const query = `
      UPDATE categories
      SET
        name           = ?,
        slug           = ?,
        description    = ?,
        image_url      = ?,
        gallery_images = ?,
        videos         = ?,
        sort_order     = ?,
        updated_at     = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.Slug, c.Description,
		c.ImageURL, c.GalleryImages, c.Videos,
		c.SortOrder, c.UpdatedAt,
		c.ID, // WHERE clause
	)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting category #%s from the database...", id)
	return execOne(ctx, r.db, `DELETE FROM categories WHERE id = ?`, id)
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.ImageURL, &c.GalleryImages, &c.Videos,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
