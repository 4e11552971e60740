// Package webhook pushes citizen facing status messages to the configured
// messaging gateway.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"beyazmasa/internal/application/ticket/usecases"
	sharedconfig "beyazmasa/internal/shared/config"
	"beyazmasa/internal/shared/logger"
)

const defaultTimeout = 10 * time.Second

// notifyPayload is the wire format the gateway expects.
type notifyPayload struct {
	CitizenPhone string `json:"citizen_phone"`
	Message      string `json:"message"`
}

type Notifier struct {
	url        string
	httpClient *http.Client
	logger     logger.Interface
}

var _ usecases.CitizenNotifier = (*Notifier)(nil)

// NewNotifier builds the gateway client. An empty URL returns nil, which the
// caller treats as notifications disabled.
func NewNotifier(cfg sharedconfig.WebhookConfig, log logger.Interface) *Notifier {
	if cfg.URL == "" {
		return nil
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Notifier{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

func (n *Notifier) Notify(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(notifyPayload{
		CitizenPhone: phone,
		Message:      message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}
	return nil
}
