package ports

import (
	"context"

	"atcoder-notifier/internal/domain/model"
)

// SettingsStore persists the bot settings. Load returns defaults when
// nothing has been saved yet.
type SettingsStore interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}
