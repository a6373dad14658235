package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// GeneratePNG generates a simple RGBA image and encodes it to PNG
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

// GenerateMP4 returns a minimal ISO base media header, enough for MIME
// sniffing to report video/mp4.
func GenerateMP4() []byte {
	b := []byte{0x00, 0x00, 0x00, 0x18}
	b = append(b, []byte("ftypisom")...)
	b = append(b, 0x00, 0x00, 0x02, 0x00)
	b = append(b, []byte("isomiso2")...)
	return append(b, make([]byte, 64)...)
}
