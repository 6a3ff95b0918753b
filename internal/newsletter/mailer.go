package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/eyoab/tarikoch/internal/app"
)

// Mailer sends transactional mail to subscribers.
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
}

var httpTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 60 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

var httpClient = &http.Client{
	Transport: httpTransport,
	Timeout:   30 * time.Second,
}

// HTTPMailer sends mail through a transactional email HTTP API with
// bearer-token auth (Resend-compatible request body).
type HTTPMailer struct {
	endpoint string
	apiKey   string
	from     string
}

// NewHTTPMailer creates a mailer for the given API endpoint.
func NewHTTPMailer(endpoint, apiKey, from string) *HTTPMailer {
	return &HTTPMailer{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
	}
}

type mailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendWelcome delivers the welcome email for a new subscriber.
func (m *HTTPMailer) SendWelcome(ctx context.Context, email string) error {
	body, err := json.Marshal(mailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "እንኳን ደህና መጡ!",
		HTML:    "<p>ለታሪኮች ጋዜጣ ስለተመዘገቡ እናመሰግናለን። አዳዲስ ታሪኮች ሲወጡ እንልክልዎታለን።</p>",
	})

	if err != nil {
		return fmt.Errorf("could not marshal the mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("could not build the mail request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)

	if err != nil {
		return fmt.Errorf("could not call the mail API: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mail API returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// LogMailer is the fallback used when no mail API key is configured. It
// only logs, so local environments never send real mail.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a log-only mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{logger: app.Logger()}
}

// SendWelcome logs the welcome mail instead of sending it.
func (m *LogMailer) SendWelcome(_ context.Context, email string) error {
	m.logger.Info("Welcome mail suppressed, no mail API key configured", "email", email)
	return nil
}
