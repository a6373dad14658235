package model

import (
	"time"

	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// Product belongs to the category whose slug is held in Category.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Category     string     `json:"category"`
	Summary      string     `json:"summary"`
	Description  string     `json:"description"`
	Features     StringList `json:"features"`
	ImageURL     string     `json:"image_url"`
	ImageGallery StringList `json:"image_gallery"`
	Videos       Videos     `json:"videos"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (p *Product) Media() MediaSet {
	return MediaSet{MainImage: p.ImageURL, Gallery: p.ImageGallery, Videos: p.Videos}
}

func (p *Product) SetMedia(m MediaSet) {
	p.ImageURL = m.MainImage
	p.ImageGallery = m.Gallery
	p.Videos = m.Videos
}
