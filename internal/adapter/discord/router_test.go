package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"atcoder-notifier/internal/adapter/logging"
	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/usecase"
)

type memoryStore struct {
	settings model.Settings
}

func (m *memoryStore) Load(context.Context) (model.Settings, error) { return m.settings.Clone(), nil }

func (m *memoryStore) Save(_ context.Context, s model.Settings) error {
	m.settings = s.Clone()
	return nil
}

type fakeRunner struct {
	err  error
	seen []model.Settings
}

func (f *fakeRunner) Run(_ context.Context, s model.Settings) (*usecase.RunReport, error) {
	f.seen = append(f.seen, s)
	return &usecase.RunReport{}, f.err
}

func newTestRouter(t *testing.T, initial model.Settings, runner CheckRunner) (*Router, *memoryStore) {
	t.Helper()
	store := &memoryStore{settings: initial}
	logger := logging.New(nil)
	roster, err := usecase.NewRoster(context.Background(), store, logger)
	if err != nil {
		t.Fatal(err)
	}
	return NewRouter(nil, "", roster, runner, logger, time.Second), store
}

func TestRouterRosterCommands(t *testing.T) {
	r, store := newTestRouter(t, model.Settings{}, &fakeRunner{})

	if got := r.setChannel("555"); got != "チャンネルを設定しました。" {
		t.Errorf("setChannel() = %q", got)
	}
	if store.settings.Channel != "555" {
		t.Errorf("persisted channel = %q", store.settings.Channel)
	}

	if got := r.register("alice, bob"); got != "ユーザー(alice, bob)を登録しました。" {
		t.Errorf("register() = %q", got)
	}
	if got := r.register(" , "); got != "ユーザー名を指定してください。" {
		t.Errorf("register(blank) = %q", got)
	}
	if got := r.unregister("alice"); got != "ユーザー(alice)を登録解除しました。" {
		t.Errorf("unregister() = %q", got)
	}
	if got := r.unregister("alice"); got != "ユーザー(alice)は登録されていません。" {
		t.Errorf("unregister(missing) = %q", got)
	}
	if len(store.settings.Users) != 1 || store.settings.Users[0] != "bob" {
		t.Errorf("persisted users = %v", store.settings.Users)
	}
}

func TestRouterRunNow(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", want: "完了！"},
		{name: "busy", err: usecase.ErrRunInProgress, want: "実行中です。しばらくお待ちください。"},
		{name: "no destination", err: usecase.ErrNoDestination, want: "送信先チャンネルが設定されていません。/channel で設定してください。"},
		{name: "aborted", err: &usecase.GlobalFetchError{Resource: usecase.ResourceProblemModels, Err: errors.New("503")}, want: "完了！"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{err: tt.err}
			r, _ := newTestRouter(t, model.Settings{Channel: "1", Users: []string{"alice"}}, runner)
			if got := r.runNow(); got != tt.want {
				t.Errorf("runNow() = %q, want %q", got, tt.want)
			}
			if len(runner.seen) != 1 || runner.seen[0].Users[0] != "alice" {
				t.Errorf("runner saw %v", runner.seen)
			}
		})
	}
}
