package media

import (
	"fmt"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

// Uploaded holds the URLs returned for the files of one save.
type Uploaded struct {
	MainImage string
	Gallery   []string
	Videos    []string
}

// MergeCandidate builds the media set an entity will hold after a save.
// The main image is the upload if any, else the URL typed in the form, else
// the previous one unless the form asks for its removal. Gallery and videos
// are what the form kept followed by the uploads.
func MergeCandidate(previous model.MediaSet, form port.MediaForm, up Uploaded) model.MediaSet {
	out := model.MediaSet{
		Gallery: make([]string, 0, len(form.Gallery)+len(up.Gallery)),
		Videos:  make([]model.Video, 0, len(form.Videos)+len(up.Videos)),
	}

	switch {
	case up.MainImage != "":
		out.MainImage = up.MainImage
	case form.ImageURL != "":
		out.MainImage = form.ImageURL
	case form.RemoveImage:
		out.MainImage = ""
	default:
		out.MainImage = previous.MainImage
	}

	for _, g := range form.Gallery {
		if g != "" {
			out.Gallery = append(out.Gallery, g)
		}
	}
	out.Gallery = append(out.Gallery, up.Gallery...)

	for _, v := range form.Videos {
		if v.URL != "" {
			out.Videos = append(out.Videos, v)
		}
	}
	for _, u := range up.Videos {
		out.Videos = append(out.Videos, model.Video{URL: u})
	}
	return out
}

// CheckManagedEdits rejects form URLs that are hand-edited variants of assets
// the entity already holds: a managed URL that differs from every previous
// URL while pointing at a previous public ID. Diffing by exact URL would
// otherwise destroy an asset the entity still references.
func CheckManagedEdits(hostPrefix string, previous model.MediaSet, form port.MediaForm) error {
	prevURLs := make(map[string]struct{})
	prevAssets := make(map[cloudinary.PublicAsset]struct{})
	for _, u := range previous.URLs() {
		prevURLs[u] = struct{}{}
		if a, err := cloudinary.ExtractPublicID(hostPrefix, u); err == nil {
			prevAssets[a] = struct{}{}
		}
	}

	check := func(field, url string) error {
		if url == "" {
			return nil
		}
		if _, ok := prevURLs[url]; ok {
			return nil
		}
		if !cloudinary.IsManaged(hostPrefix, url) {
			return nil
		}
		a, err := cloudinary.ExtractPublicID(hostPrefix, url)
		if err != nil {
			return newValidationError(field, "managed", "media URL %q is not a valid asset URL", url)
		}
		if _, ok := prevAssets[a]; ok {
			return newValidationError(field, "managed", "managed media URL cannot be edited, re-upload or remove it instead")
		}
		return nil
	}

	if err := check("image_url", form.ImageURL); err != nil {
		return err
	}
	for i, g := range form.Gallery {
		if err := check(fmt.Sprintf("gallery[%d]", i), g); err != nil {
			return err
		}
	}
	for i, v := range form.Videos {
		if err := check(fmt.Sprintf("videos[%d]", i), v.URL); err != nil {
			return err
		}
	}
	return nil
}
