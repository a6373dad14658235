package model

// MediaSet is every media reference an entity holds: its main image, its
// gallery and its videos.
type MediaSet struct {
	MainImage string
	Gallery   []string
	Videos    []Video
}

// URLs flattens the set into its non-empty URLs: main image first, then the
// gallery, then the videos.
func (m MediaSet) URLs() []string {
	out := make([]string, 0, 1+len(m.Gallery)+len(m.Videos))
	if m.MainImage != "" {
		out = append(out, m.MainImage)
	}
	for _, g := range m.Gallery {
		if g != "" {
			out = append(out, g)
		}
	}
	return append(out, Videos(m.Videos).URLs()...)
}

// MediaHolder is implemented by every entity that references managed media.
type MediaHolder interface {
	Media() MediaSet
	SetMedia(MediaSet)
}
