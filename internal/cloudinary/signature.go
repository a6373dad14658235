package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params is the set of request parameters covered by a signature.
type Params map[string]string

// Sign computes the provider signature over params: keys sorted, joined as
// k=v with '&', the raw secret appended, SHA-1, lowercase hex.
func Sign(params Params, secret string) (string, error) {
	if secret == "" {
		return "", signingErr("empty secret")
	}
	if len(params) == 0 {
		return "", signingErr("no parameters to sign")
	}
	if _, ok := params["signature"]; ok {
		return "", signingErr("parameters already contain a signature")
	}

	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "" {
			return "", signingErr("empty parameter name")
		}
		if v == "" {
			return "", signingErr("empty value for parameter %q", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:]), nil
}

// UploadParams builds the signed parameter set of a direct upload.
func UploadParams(folder, preset string, kind ResourceKind, ts time.Time) (Params, error) {
	if folder == "" {
		return nil, signingErr("upload folder is required")
	}
	if preset == "" {
		return nil, signingErr("upload preset is required")
	}
	p := Params{
		"folder":        folder,
		"timestamp":     strconv.FormatInt(ts.Unix(), 10),
		"upload_preset": preset,
	}
	if kind == KindVideo {
		p["resource_type"] = string(KindVideo)
	}
	return p, nil
}

// DestroyParams builds the signed parameter set of a destroy call.
func DestroyParams(publicID string, kind ResourceKind, ts time.Time) (Params, error) {
	if publicID == "" {
		return nil, signingErr("public_id is required")
	}
	p := Params{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(ts.Unix(), 10),
	}
	if kind == KindVideo {
		p["resource_type"] = string(KindVideo)
	}
	return p, nil
}

// Signer holds the API secret. It must only ever run server-side.
type Signer struct {
	secret string
	preset string
	now    func() time.Time
}

func NewSigner(secret, uploadPreset string) *Signer {
	return &Signer{secret: secret, preset: uploadPreset, now: time.Now}
}

// WithClock returns a copy of the signer reading time from now.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	cp := *s
	cp.now = now
	return &cp
}

// SignUpload authorises one upload of kind into folder.
func (s *Signer) SignUpload(folder string, kind ResourceKind) (Signature, error) {
	ts := s.now()
	p, err := UploadParams(folder, s.preset, kind, ts)
	if err != nil {
		return Signature{}, err
	}
	sig, err := Sign(p, s.secret)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Signature: sig, Timestamp: ts.Unix()}, nil
}

// SignDestroy authorises the deletion of publicID.
func (s *Signer) SignDestroy(publicID string, kind ResourceKind) (Signature, error) {
	ts := s.now()
	p, err := DestroyParams(publicID, kind, ts)
	if err != nil {
		return Signature{}, err
	}
	sig, err := Sign(p, s.secret)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Signature: sig, Timestamp: ts.Unix()}, nil
}

// UploadPreset returns the fixed preset every upload is signed with.
func (s *Signer) UploadPreset() string {
	return s.preset
}
