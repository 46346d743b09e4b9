package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

// Roster owns the in-memory settings and persists every mutation.
type Roster struct {
	store  ports.SettingsStore
	logger ports.Logger

	mu       sync.RWMutex
	settings model.Settings
}

// NewRoster loads the persisted settings into a Roster.
func NewRoster(ctx context.Context, store ports.SettingsStore, logger ports.Logger) (*Roster, error) {
	settings, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	logger.Info(ctx, "restored settings", "channel", settings.Channel, "users", settings.Users)
	return &Roster{store: store, logger: logger, settings: settings.Clone()}, nil
}

// Snapshot returns a copy of the current settings.
func (r *Roster) Snapshot() model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Clone()
}

// Users returns the registered users in registration order.
func (r *Roster) Users() []string {
	return r.Snapshot().Users
}

// SetChannel makes channelID the destination of every notification.
func (r *Roster) SetChannel(ctx context.Context, channelID string) error {
	return r.mutate(ctx, func(s *model.Settings) error {
		s.Channel = channelID
		return nil
	})
}

// Register appends every comma separated name in usernames, trimmed and in
// order. Duplicates are kept. It returns the names added.
func (r *Roster) Register(ctx context.Context, usernames string) ([]string, error) {
	var added []string
	for _, name := range strings.Split(usernames, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return nil, nil
	}

	err := r.mutate(ctx, func(s *model.Settings) error {
		s.Users = append(s.Users, added...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// Unregister removes the first occurrence of username.
func (r *Roster) Unregister(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	return r.mutate(ctx, func(s *model.Settings) error {
		for i, u := range s.Users {
			if u == username {
				s.Users = append(s.Users[:i:i], s.Users[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrUserNotRegistered, username)
	})
}

// mutate applies fn to a copy and commits it only once it is persisted.
func (r *Roster) mutate(ctx context.Context, fn func(*model.Settings) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.settings.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := r.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	r.settings = next
	r.logger.Info(ctx, "settings updated", "channel", next.Channel, "users", next.Users)
	return nil
}
