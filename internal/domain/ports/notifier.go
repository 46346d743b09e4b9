package ports

import (
	"context"

	"atcoder-notifier/internal/domain/model"
)

// Notifier sends messages to a destination channel (e.g. Discord).
type Notifier interface {
	SendText(ctx context.Context, channelID, text string) error
	SendNotifications(ctx context.Context, channelID string, notifications []model.Notification) error
}
