// Package notify delivers password reset codes to the external
// notification collaborator. Delivery is fire-and-forget from the
// caller's point of view: a failed delivery is logged, never rolled
// back into the reset flow.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

// ResetCodeMessage is the payload delivered to the notification webhook.
type ResetCodeMessage struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Notifier dispatches a reset code to the account owner.
type Notifier interface {
	SendResetCode(ctx context.Context, msg ResetCodeMessage) error
}

// webhookNotifier posts reset codes to a configured HTTP endpoint.
type webhookNotifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewWebhookNotifier constructs a [Notifier] that POSTs reset codes to
// cfg.WebhookURL. When no URL is configured, a [NopNotifier] is returned
// so that the reset flow still works in development setups.
func NewWebhookNotifier(cfg config.Notify, log *logger.Logger) Notifier {
	if cfg.WebhookURL == "" {
		log.Warn().Msg("no notification webhook configured, reset codes will be discarded")
		return NopNotifier{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.WebhookURL, "/")).
		SetTimeout(cfg.Timeout)

	return &webhookNotifier{client: cli, logger: log}
}

// SendResetCode posts the message to the webhook. Any non-2xx response is
// reported as an error for the caller to log.
func (n *webhookNotifier) SendResetCode(ctx context.Context, msg ResetCodeMessage) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("")
	if err != nil {
		return fmt.Errorf("reset code notification request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("reset code notification rejected: %s", resp.Status())
	}

	return nil
}

// NopNotifier discards every notification. Used in tests and when no
// webhook endpoint is configured.
type NopNotifier struct{}

func (NopNotifier) SendResetCode(ctx context.Context, msg ResetCodeMessage) error {
	return nil
}
