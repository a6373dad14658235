package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/fhuszti/paper-site-go/internal/validation"
)

// Folders are the CDN folders an entity type uploads into.
type Folders struct {
	Images string
	Videos string
}

var (
	CategoryFolders = Folders{Images: "category_images", Videos: "category_videos"}
	ProductFolders  = Folders{Images: "product_images", Videos: "product_videos"}
	ContentFolders  = Folders{Images: "content_images", Videos: "content_videos"}
)

// mediaWorkflow runs the media side of every admin save and delete.
type mediaWorkflow struct {
	store  port.AssetStore
	purger port.MediaPurger
	cache  port.Cache
}

func newMediaWorkflow(store port.AssetStore, cache port.Cache) mediaWorkflow {
	return mediaWorkflow{
		store:  store,
		purger: media.NewReconciler(store, store.HostPrefix()),
		cache:  cache,
	}
}

// save uploads the form files, swaps the holder's media for the merged
// candidate, purges what the candidate dropped and calls persist once.
// An upload failure returns before anything is destroyed or persisted.
func (w mediaWorkflow) save(ctx context.Context, folders Folders, holder model.MediaHolder, form port.MediaForm, persist func(context.Context) error) ([]port.Warning, error) {
	previous := holder.Media()
	if err := media.CheckManagedEdits(w.store.HostPrefix(), previous, form); err != nil {
		return nil, err
	}

	urls, err := media.UploadBatch(ctx, w.store, pendingUploads(folders, form.Files))
	if err != nil {
		return nil, err
	}
	candidate := media.MergeCandidate(previous, form, uploaded(form.Files, urls))

	warnings := w.purger.Purge(ctx, media.DeleteSet(previous.URLs(), candidate.URLs()))

	holder.SetMedia(candidate)
	if err := persist(ctx); err != nil {
		return nil, err
	}
	w.invalidate(ctx)
	return warnings, nil
}

// remove purges every asset of the holder, then calls persist even when
// some destroys failed.
func (w mediaWorkflow) remove(ctx context.Context, holder model.MediaHolder, persist func(context.Context) error) ([]port.Warning, error) {
	warnings := w.purger.Purge(ctx, holder.Media().URLs())
	if err := persist(ctx); err != nil {
		return nil, err
	}
	w.invalidate(ctx)
	return warnings, nil
}

func (w mediaWorkflow) invalidate(ctx context.Context) {
	if err := w.cache.InvalidateCatalog(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  failed to invalidate catalog cache: %v", err)
	}
}

func pendingUploads(folders Folders, files port.MediaFiles) []media.PendingUpload {
	out := make([]media.PendingUpload, 0, 1+len(files.Gallery)+len(files.Videos))
	if files.Image != nil {
		out = append(out, media.PendingUpload{Field: "image", Folder: folders.Images, Kind: cloudinary.KindImage, File: *files.Image})
	}
	for _, f := range files.Gallery {
		out = append(out, media.PendingUpload{Field: "gallery", Folder: folders.Images, Kind: cloudinary.KindImage, File: f})
	}
	for _, f := range files.Videos {
		out = append(out, media.PendingUpload{Field: "videos", Folder: folders.Videos, Kind: cloudinary.KindVideo, File: f})
	}
	return out
}

// uploaded splits the URLs of pendingUploads back into their fields.
func uploaded(files port.MediaFiles, urls []string) media.Uploaded {
	var up media.Uploaded
	i := 0
	if files.Image != nil {
		up.MainImage = urls[i]
		i++
	}
	up.Gallery = append(up.Gallery, urls[i:i+len(files.Gallery)]...)
	i += len(files.Gallery)
	up.Videos = append(up.Videos, urls[i:i+len(files.Videos)]...)
	return up
}

func validate(what string, in any) error {
	if err := validation.ValidateStruct(in); err != nil {
		fields := validation.FieldErrors(err)
		if fields == nil {
			return err
		}
		return &media.ValidationError{Message: "invalid " + what, Fields: fields}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
