package model

import "time"

// ContentSection is a keyed block of site copy such as "hero" or "about".
type ContentSection struct {
	Key           string     `json:"key"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	ImageURL      string     `json:"image_url"`
	GalleryImages StringList `json:"galleryImages"`
	Videos        Videos     `json:"videos"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *ContentSection) Media() MediaSet {
	return MediaSet{MainImage: c.ImageURL, Gallery: c.GalleryImages, Videos: c.Videos}
}

func (c *ContentSection) SetMedia(m MediaSet) {
	c.ImageURL = m.MainImage
	c.GalleryImages = m.Gallery
	c.Videos = m.Videos
}
