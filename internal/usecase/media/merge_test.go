package media

import (
	"testing"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCandidate_MainImage(t *testing.T) {
	prev := model.MediaSet{MainImage: "prev.jpg"}

	tests := []struct {
		name string
		form port.MediaForm
		up   Uploaded
		want string
	}{
		{"upload wins", port.MediaForm{ImageURL: "manual.jpg"}, Uploaded{MainImage: "up.jpg"}, "up.jpg"},
		{"manual beats previous", port.MediaForm{ImageURL: "manual.jpg"}, Uploaded{}, "manual.jpg"},
		{"previous is carried forward", port.MediaForm{}, Uploaded{}, "prev.jpg"},
		{"explicit removal", port.MediaForm{RemoveImage: true}, Uploaded{}, ""},
		{"upload beats removal", port.MediaForm{RemoveImage: true}, Uploaded{MainImage: "up.jpg"}, "up.jpg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MergeCandidate(prev, tc.form, tc.up).MainImage)
		})
	}
}

func TestMergeCandidate_ListsAreKeptPlusUploaded(t *testing.T) {
	prev := model.MediaSet{
		Gallery: []string{"g1", "g2", "g3"},
		Videos:  []model.Video{{URL: "v1", Caption: "one"}},
	}
	form := port.MediaForm{
		Gallery: []string{"g3", "", "g1"},
		Videos:  nil,
	}
	up := Uploaded{Gallery: []string{"g4"}, Videos: []string{"v2"}}

	got := MergeCandidate(prev, form, up)
	assert.Equal(t, []string{"g3", "g1", "g4"}, got.Gallery)
	assert.Equal(t, []model.Video{{URL: "v2"}}, got.Videos)
}

func TestMergeCandidate_KeepsVideoCaptions(t *testing.T) {
	form := port.MediaForm{Videos: []model.Video{{URL: "v1", Caption: "Platform tour"}, {URL: ""}}}
	got := MergeCandidate(model.MediaSet{}, form, Uploaded{})
	assert.Equal(t, []model.Video{{URL: "v1", Caption: "Platform tour"}}, got.Videos)
}

func TestCheckManagedEdits(t *testing.T) {
	a := prefix + "image/upload/v1/category_images/a.jpg"
	v := prefix + "video/upload/v7/category_videos/intro.mp4"
	prev := model.MediaSet{MainImage: a, Gallery: []string{a}, Videos: []model.Video{{URL: v}}}

	tests := []struct {
		name      string
		form      port.MediaForm
		wantField string
	}{
		{"unchanged", port.MediaForm{ImageURL: a, Gallery: []string{a}, Videos: []model.Video{{URL: v}}}, ""},
		{"cleared", port.MediaForm{}, ""},
		{"external url", port.MediaForm{ImageURL: "https://cdn.example.com/a.jpg"}, ""},
		{"fresh browser upload", port.MediaForm{ImageURL: prefix + "image/upload/v2/category_images/new.jpg"}, ""},
		{"transformation added", port.MediaForm{ImageURL: prefix + "image/upload/v1/category_images/a.png"}, "image_url"},
		{"version changed", port.MediaForm{Gallery: []string{prefix + "image/upload/v9/category_images/a.jpg"}}, "gallery[0]"},
		{"video edited", port.MediaForm{Videos: []model.Video{{URL: prefix + "video/upload/category_videos/intro.webm"}}}, "videos[0]"},
		{"malformed managed url", port.MediaForm{ImageURL: prefix + "image/upload/"}, "image_url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckManagedEdits(prefix, prev, tc.form)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "managed", vErr.Fields[tc.wantField])
		})
	}
}
