package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

type ContentRepository struct {
	db *sql.DB
}

// compile-time check: *ContentRepository must satisfy port.ContentRepository
var _ port.ContentRepository = (*ContentRepository)(nil)

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) GetByKey(ctx context.Context, key string) (*model.ContentSection, error) {
	const query = `
      SELECT section_key, title, body, image_url, gallery_images, videos, updated_at
      FROM content_sections
      WHERE section_key = ?
    `
	var c model.ContentSection
	if err := r.db.QueryRowContext(ctx, query, key).Scan(
		&c.Key, &c.Title, &c.Body,
		&c.ImageURL, &c.GalleryImages, &c.Videos,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) Upsert(ctx context.Context, c *model.ContentSection) error {
	const query = `
      INSERT INTO content_sections
        (section_key, title, body, image_url, gallery_images, videos, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE
        title          = VALUES(title),
        body           = VALUES(body),
        image_url      = VALUES(image_url),
        gallery_images = VALUES(gallery_images),
        videos         = VALUES(videos),
        updated_at     = VALUES(updated_at)
    `
	_, err := r.db.ExecContext(ctx, query,
		c.Key, c.Title, c.Body,
		c.ImageURL, c.GalleryImages, c.Videos,
		c.UpdatedAt,
	)
	return err
}
