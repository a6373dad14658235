package media

import (
	"bytes"
	"io"
	"testing"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name       string
		file       port.FileUpload
		kind       cloudinary.ResourceKind
		wantReason string
	}{
		{"png image", pngFile("logo.png", 200*1024), cloudinary.KindImage, ""},
		{"mp4 video", mp4File("tour.mp4", 2*1024*1024), cloudinary.KindVideo, ""},
		{"image at the limit", pngFile("big.png", int(MaxImageSize)), cloudinary.KindImage, ""},
		{"image over the limit", pngFile("huge.png", 11*1024*1024), cloudinary.KindImage, "max"},
		{"video over the limit", port.FileUpload{Filename: "long.mp4", Size: MaxVideoSize + 1, Content: bytes.NewReader(mp4Header)}, cloudinary.KindVideo, "max"},
		{"empty file", port.FileUpload{Filename: "none.png", Size: 0, Content: bytes.NewReader(nil)}, cloudinary.KindImage, "empty"},
		{"text as image", fileOf("notes.png", []byte("just some text"), 64), cloudinary.KindImage, "mimetype"},
		{"image as video", pngFile("still.mp4", 1024), cloudinary.KindVideo, "mimetype"},
		{"missing content", port.FileUpload{Filename: "x.png", Size: 10}, cloudinary.KindImage, "required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFile("image", tc.file, tc.kind)
			if tc.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantReason, vErr.Fields["image"])
		})
	}
}

func TestValidateFile_RewindsContent(t *testing.T) {
	f := pngFile("logo.png", 4096)
	require.NoError(t, ValidateFile("image", f, cloudinary.KindImage))

	b, err := io.ReadAll(f.Content)
	require.NoError(t, err)
	assert.Len(t, b, 4096)
	assert.True(t, bytes.HasPrefix(b, pngHeader))
}

func TestMaxFileSize(t *testing.T) {
	assert.Equal(t, int64(10*1024*1024), MaxFileSize(cloudinary.KindImage))
	assert.Equal(t, int64(100*1024*1024), MaxFileSize(cloudinary.KindVideo))
}
