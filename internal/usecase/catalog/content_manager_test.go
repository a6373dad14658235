package catalog

import (
	"context"
	"testing"

	"github.com/fhuszti/paper-site-go/internal/mock"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertContent_CreatesMissingSection(t *testing.T) {
	repo := &mock.ContentRepo{}
	store := &mock.AssetStore{}
	svc := NewContentManager(repo, store, &mock.Cache{})

	hero := pngUpload("hero.png", 4096)
	res, err := svc.UpsertContent(context.Background(), "home-hero", port.ContentInput{
		Title: "Trade without risk",
		Files: port.MediaFiles{Image: &hero},
	})
	require.NoError(t, err)
	require.Equal(t, 1, repo.UpsertCalls)
	assert.Equal(t, "home-hero", repo.Upserted.Key)
	assert.Equal(t, img("content_images/hero.png"), res.Entity.ImageURL)
	assert.Equal(t, "content_images", store.Uploads()[0].Folder)
}

func TestUpsertContent_ReplacesVideos(t *testing.T) {
	oldVideo := prefix + "video/upload/v1/content_videos/intro.mp4"
	repo := &mock.ContentRepo{Record: &model.ContentSection{
		Key:    "home-hero",
		Title:  "Old",
		Videos: model.Videos{{URL: oldVideo, Caption: "Intro"}},
	}}
	store := &mock.AssetStore{}
	svc := NewContentManager(repo, store, &mock.Cache{})

	res, err := svc.UpsertContent(context.Background(), "home-hero", port.ContentInput{Title: "New"})
	require.NoError(t, err)
	assert.Empty(t, res.Entity.Videos)
	require.Len(t, store.Destroys(), 1)
	assert.Equal(t, "content_videos/intro", store.Destroys()[0].PublicID)
	assert.Equal(t, "video", string(store.Destroys()[0].Kind))
}

func TestUpsertContent_InvalidKey(t *testing.T) {
	repo := &mock.ContentRepo{}
	svc := NewContentManager(repo, &mock.AssetStore{}, &mock.Cache{})

	_, err := svc.UpsertContent(context.Background(), "Home Hero", port.ContentInput{Title: "x"})
	var vErr *media.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "slug", vErr.Fields["key"])
	assert.Equal(t, 0, repo.UpsertCalls)
}
