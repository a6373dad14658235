package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// SentEmail is one message received by MailServer.
type SentEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// MailServer stands in for the transactional email API.
type MailServer struct {
	*httptest.Server
	APIKey string
	Sent   chan SentEmail
}

func StartMailServer(t *testing.T, apiKey string) *MailServer {
	t.Helper()
	ms := &MailServer{APIKey: apiKey, Sent: make(chan SentEmail, 16)}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiKey {
			http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
			return
		}
		var e SentEmail
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
			return
		}
		ms.Sent <- e
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	t.Cleanup(ms.Close)
	return ms
}

// Wait returns the next email or fails the test after timeout.
func (ms *MailServer) Wait(t *testing.T, timeout time.Duration) SentEmail {
	t.Helper()
	select {
	case e := <-ms.Sent:
		return e
	case <-time.After(timeout):
		t.Fatalf("no email received within %s", timeout)
		return SentEmail{}
	}
}
