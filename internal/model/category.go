package model

import (
	"time"

	"github.com/fhuszti/paper-site-go/internal/uuid"
)

type Category struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	GalleryImages StringList `json:"galleryImages"`
	Videos        Videos     `json:"videos"`
	SortOrder     int        `json:"sort_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Category) Media() MediaSet {
	return MediaSet{MainImage: c.ImageURL, Gallery: c.GalleryImages, Videos: c.Videos}
}

func (c *Category) SetMedia(m MediaSet) {
	c.ImageURL = m.MainImage
	c.GalleryImages = m.Gallery
	c.Videos = m.Videos
}
