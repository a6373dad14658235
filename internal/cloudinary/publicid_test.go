package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoPrefix = "https://res.cloudinary.com/demo/"

func TestExtractPublicID_RoundTrip(t *testing.T) {
	tests := []struct {
		url      string
		publicID string
		kind     ResourceKind
	}{
		{demoPrefix + "image/upload/v1/category_images/a.jpg", "category_images/a", KindImage},
		{demoPrefix + "image/upload/v1712345678/product_images/sheet-a4.png", "product_images/sheet-a4", KindImage},
		{demoPrefix + "image/upload/category_images/logo.png", "category_images/logo", KindImage},
		{demoPrefix + "video/upload/v99/product_videos/factory.tour.mp4", "product_videos/factory.tour", KindVideo},
		{demoPrefix + "video/upload/product_videos/intro.webm", "product_videos/intro", KindVideo},
		{demoPrefix + "image/upload/v3/a/b/c/deep", "a/b/c/deep", KindImage},
		{demoPrefix + "image/upload/version2/x.jpg", "version2/x", KindImage},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			got, err := ExtractPublicID(demoPrefix, tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.publicID, got.PublicID)
			assert.Equal(t, tc.kind, got.Kind)
		})
	}
}

func TestExtractPublicID_Invalid(t *testing.T) {
	tests := []string{
		"",
		"https://example.com/image/upload/v1/a.jpg",
		"https://res.cloudinary.com/other/image/upload/v1/a.jpg",
		"http://res.cloudinary.com/demo/image/upload/v1/a.jpg",
		demoPrefix + "image/fetch/a.jpg",
		demoPrefix + "image/upload/",
		demoPrefix + "image/upload/v12",
	}

	for _, u := range tests {
		t.Run(u, func(t *testing.T) {
			_, err := ExtractPublicID(demoPrefix, u)
			assert.ErrorIs(t, err, ErrInvalidAssetURL)
		})
	}
}

func TestIsManaged(t *testing.T) {
	assert.True(t, IsManaged(demoPrefix, demoPrefix+"image/upload/a.jpg"))
	assert.False(t, IsManaged(demoPrefix, "https://cdn.example.com/a.jpg"))
	assert.False(t, IsManaged("", demoPrefix+"image/upload/a.jpg"))
}

func TestParseResourceKind(t *testing.T) {
	k, err := ParseResourceKind("")
	require.NoError(t, err)
	assert.Equal(t, KindImage, k)

	k, err = ParseResourceKind("video")
	require.NoError(t, err)
	assert.Equal(t, KindVideo, k)

	_, err = ParseResourceKind("raw")
	assert.Error(t, err)
}
