package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

// Webhook is a Discord webhook notifier. The webhook fixes the destination,
// so channel ids passed to it are ignored.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SendText posts a plain message.
func (w *Webhook) SendText(ctx context.Context, _ string, text string) error {
	return w.post(ctx, &discordgo.WebhookParams{Content: truncate(text, maxContent)})
}

// SendNotifications posts the notifications as embeds, split across as many
// messages as Discord limits require.
func (w *Webhook) SendNotifications(ctx context.Context, _ string, notifications []model.Notification) error {
	for _, batch := range batchEmbeds(toEmbeds(notifications)) {
		if err := w.post(ctx, &discordgo.WebhookParams{Embeds: batch}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Webhook) post(ctx context.Context, params *discordgo.WebhookParams) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "notification sent to discord", "embeds", len(params.Embeds))
	return nil
}
