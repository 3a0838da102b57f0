// Package mailer delivers contact form submissions through a hosted email
// relay (an EmailJS-style send API).
//
// Delivery is a single attempt: failures surface to the caller, who shows
// the visitor an error notification. The visitor resubmits manually; the
// client never retries on its own.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ghassen-kharrat/portfolio/internal/config"
)

const defaultTimeout = 15 * time.Second

// Submission is the contact form payload forwarded to the relay template.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Client interfaces with the hosted email relay API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
}

// NewClient creates a relay client from the mailer configuration.
func NewClient(cfg config.Mailer) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		endpoint:   cfg.Endpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
	}
}

// Configured reports whether the relay credentials are present.
func (c *Client) Configured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

// sendRequest is the relay API request body.
type sendRequest struct {
	ServiceID      string     `json:"service_id"`
	TemplateID     string     `json:"template_id"`
	UserID         string     `json:"user_id"`
	TemplateParams Submission `json:"template_params"`
}

// Send forwards one submission to the relay. It makes exactly one attempt.
func (c *Client) Send(ctx context.Context, sub Submission) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		TemplateParams: sub,
	})
	if err != nil {
		return fmt.Errorf("encoding relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling email relay: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: HTTP %d", ErrRejected, resp.StatusCode)
	default:
		return &ServerError{StatusCode: resp.StatusCode}
	}
}
