package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
)

const (
	DefaultAPIBaseURL      = "https://api.cloudinary.com/v1_1"
	DefaultDeliveryBaseURL = "https://res.cloudinary.com"

	maxResponseBytes = 1 << 20
)

// Config holds the account settings of the provider.
type Config struct {
	CloudName       string
	APIKey          string
	APIBaseURL      string
	DeliveryBaseURL string
	Timeout         time.Duration
}

// RequestSigner issues signatures for outgoing provider calls.
type RequestSigner interface {
	SignUpload(folder string, kind ResourceKind) (Signature, error)
	SignDestroy(publicID string, kind ResourceKind) (Signature, error)
	UploadPreset() string
}

// Client talks to the upload and destroy endpoints of the provider.
type Client struct {
	cfg    Config
	signer RequestSigner
	http   *http.Client
}

func NewClient(cfg Config, signer RequestSigner) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.DeliveryBaseURL == "" {
		cfg.DeliveryBaseURL = DefaultDeliveryBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		signer: signer,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

// HostPrefix is the delivery URL prefix shared by every asset of the account.
func (c *Client) HostPrefix() string {
	return HostPrefix(c.cfg.DeliveryBaseURL, c.cfg.CloudName)
}

// HostPrefix builds the managed delivery prefix for cloudName.
func HostPrefix(deliveryBaseURL, cloudName string) string {
	if deliveryBaseURL == "" {
		deliveryBaseURL = DefaultDeliveryBaseURL
	}
	return strings.TrimRight(deliveryBaseURL, "/") + "/" + cloudName + "/"
}

type apiError struct {
	Message string `json:"message"`
}

type uploadResponse struct {
	PublicID  string    `json:"public_id"`
	SecureURL string    `json:"secure_url"`
	Error     *apiError `json:"error"`
}

type destroyResponse struct {
	Result string    `json:"result"`
	Error  *apiError `json:"error"`
}

// Upload signs and sends one file, returning the secure delivery URL.
func (c *Client) Upload(ctx context.Context, in UploadInput) (string, error) {
	sig, err := c.signer.SignUpload(in.Folder, in.Kind)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", in.Filename)
	if err != nil {
		return "", &UploadFailedError{Message: "could not build upload form", Err: err}
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return "", &UploadFailedError{Message: "could not read file " + strconv.Quote(in.Filename), Err: err}
	}
	fields := []struct{ k, v string }{
		{"upload_preset", c.signer.UploadPreset()},
		{"folder", in.Folder},
		{"timestamp", strconv.FormatInt(sig.Timestamp, 10)},
		{"signature", sig.Signature},
		{"api_key", c.cfg.APIKey},
	}
	if in.Kind == KindVideo {
		fields = append(fields, struct{ k, v string }{"resource_type", string(KindVideo)})
	}
	for _, f := range fields {
		if err := mw.WriteField(f.k, f.v); err != nil {
			return "", &UploadFailedError{Message: "could not build upload form", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return "", &UploadFailedError{Message: "could not build upload form", Err: err}
	}

	logger.Infof(ctx, "uploading %q to folder %q as %s...", in.Filename, in.Folder, in.Kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(in.Kind, "upload"), body)
	if err != nil {
		return "", &UploadFailedError{Message: "could not build upload request", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	status, err := c.do(req, &out)
	if err != nil {
		return "", &UploadFailedError{Message: "request to provider failed", Err: err}
	}
	if out.Error != nil && out.Error.Message != "" {
		return "", &UploadFailedError{Message: out.Error.Message}
	}
	if status < 200 || status > 299 {
		return "", &UploadFailedError{Message: fmt.Sprintf("unexpected status %d", status)}
	}
	if out.SecureURL == "" {
		return "", &UploadFailedError{Message: "missing secure_url in provider response"}
	}

	return out.SecureURL, nil
}

// Destroy signs and sends a deletion for publicID. A missing asset is reported
// as NotFound, not as an error.
func (c *Client) Destroy(ctx context.Context, publicID string, kind ResourceKind) (DestroyResult, error) {
	sig, err := c.signer.SignDestroy(publicID, kind)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", strconv.FormatInt(sig.Timestamp, 10))
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", sig.Signature)
	if kind == KindVideo {
		form.Set("resource_type", string(KindVideo))
	}

	logger.Infof(ctx, "destroying %s %q...", kind, publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(kind, "destroy"), strings.NewReader(form.Encode()))
	if err != nil {
		return "", &DeletionFailedError{PublicID: publicID, Message: "could not build destroy request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out destroyResponse
	status, err := c.do(req, &out)
	if err != nil {
		return "", &DeletionFailedError{PublicID: publicID, Message: "request to provider failed", Err: err}
	}

	switch DestroyResult(out.Result) {
	case Deleted:
		return Deleted, nil
	case NotFound:
		return NotFound, nil
	}

	msg := fmt.Sprintf("unexpected result %q (status %d)", out.Result, status)
	if out.Error != nil && out.Error.Message != "" {
		msg = out.Error.Message
	}
	return "", &DeletionFailedError{PublicID: publicID, Message: msg}
}

func (c *Client) endpoint(kind ResourceKind, action string) string {
	if kind == "" {
		kind = KindImage
	}
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(c.cfg.APIBaseURL, "/"), c.cfg.CloudName, kind, action)
}

// do sends req and decodes a bounded JSON body into v, whatever the status.
func (c *Client) do(req *http.Request, v any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warnf(req.Context(), "failed to close provider response body: %v", err)
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}
