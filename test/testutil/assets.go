package testutil

import (
	"testing"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/cloudinary/cloudinarytest"
)

const (
	CloudName = "paper-test"
	APIKey    = "123456789"
	APISecret = "test-secret"
	Preset    = "site"
)

// StartAssets runs a fake asset CDN and a client signed for it.
func StartAssets(t *testing.T) (*cloudinarytest.Server, *cloudinary.Client, *cloudinary.Signer) {
	t.Helper()
	srv := cloudinarytest.NewServer(t, CloudName, APIKey, APISecret, Preset)
	signer := cloudinary.NewSigner(APISecret, Preset)
	client := cloudinary.NewClient(cloudinary.Config{
		CloudName:  CloudName,
		APIKey:     APIKey,
		APIBaseURL: srv.URL,
	}, signer)
	return srv, client, signer
}
