// Package email talks to the hosted mail provider and composes booking
// confirmation messages.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/washify/booking/config"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ProviderError is an error the mail provider reported about the request
// itself (bad address, rejected content). It is distinct from transport
// failures and is safe to surface to the caller.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("mail provider rejected request (%d): %s", e.StatusCode, e.Message)
}

// Client sends messages through a Resend-style JSON API.
type Client struct {
	baseURL string
	apiKey  string
	from    string
	http    *http.Client
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call mail provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	var decoded sendResponse
	if err := json.Unmarshal(body, &decoded); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("decode provider response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if decoded.ID == "" {
			decoded.ID = uuid.NewString()
		}
		return decoded.ID, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		message := decoded.Message
		if message == "" {
			message = string(body)
		}
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: message}
	default:
		return "", fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
}

var _ Sender = (*Client)(nil)
