package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
)

const (
	DefaultAPIURL = "https://api.resend.com/emails"
	maxErrorBody  = 4 << 10
)

var ErrSendFailed = errors.New("mailer: send failed")

type Config struct {
	APIURL  string
	APIKey  string
	From    string
	Timeout time.Duration
}

// HTTPMailer posts emails as JSON to a transactional email API.
type HTTPMailer struct {
	cfg  Config
	http *http.Client
}

// compile-time check: *HTTPMailer must satisfy port.Mailer
var _ port.Mailer = (*HTTPMailer)(nil)

func New(cfg Config) *HTTPMailer {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPMailer{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (m *HTTPMailer) Send(ctx context.Context, e port.Email) error {
	body, err := json.Marshal(sendRequest{
		From:    m.cfg.From,
		To:      e.To,
		ReplyTo: e.ReplyTo,
		Subject: e.Subject,
		Text:    e.Text,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	logger.Debugf(ctx, "email %q sent to %d recipient(s)", e.Subject, len(e.To))
	return nil
}
