package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"atcoder-notifier/internal/adapter/logging"
	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/usecase"
)

type staticStore struct{ settings model.Settings }

func (s *staticStore) Load(context.Context) (model.Settings, error) { return s.settings, nil }
func (s *staticStore) Save(context.Context, model.Settings) error   { return nil }

type emptyJudge struct{ modelsErr error }

func (j emptyJudge) GetProblemModels(context.Context) (model.ProblemModelIndex, error) {
	return model.ProblemModelIndex{}, j.modelsErr
}

func (emptyJudge) GetProblemInfos(context.Context) (model.ProblemInfoIndex, error) {
	return model.ProblemInfoIndex{}, nil
}

func (emptyJudge) GetUserSubmissions(context.Context, string, int64) ([]model.Submission, error) {
	return nil, nil
}

type countingNotifier struct{ texts []string }

func (n *countingNotifier) SendText(_ context.Context, _ string, text string) error {
	n.texts = append(n.texts, text)
	return nil
}

func (n *countingNotifier) SendNotifications(context.Context, string, []model.Notification) error {
	return nil
}

func newTestApp(t *testing.T, judge emptyJudge, notifier *countingNotifier, cfg Config) *App {
	t.Helper()
	logger := logging.New(nil)
	roster, err := usecase.NewRoster(context.Background(), &staticStore{settings: model.Settings{Channel: "1", Users: []string{"alice"}}}, logger)
	if err != nil {
		t.Fatal(err)
	}
	check := usecase.NewDailyCheck(judge, notifier, logger, usecase.DailyCheckConfig{})
	return New(check, roster, nil, nil, logger, cfg)
}

func TestCheckOnce(t *testing.T) {
	notifier := &countingNotifier{}
	a := newTestApp(t, emptyJudge{}, notifier, Config{Schedule: "0 0 * * *", RunTimeout: time.Second})

	report, err := a.CheckOnce(context.Background())
	if err != nil {
		t.Fatalf("CheckOnce() error = %v", err)
	}
	if !report.Fallback || len(notifier.texts) != 1 || notifier.texts[0] != usecase.NobodySolvedMessage {
		t.Errorf("report = %+v, texts = %v", report, notifier.texts)
	}
}

func TestCheckOnceAborted(t *testing.T) {
	notifier := &countingNotifier{}
	a := newTestApp(t, emptyJudge{modelsErr: errors.New("503")}, notifier, Config{Schedule: "0 0 * * *", RunTimeout: time.Second})

	if _, err := a.CheckOnce(context.Background()); !usecase.IsAborted(err) {
		t.Fatalf("CheckOnce() error = %v, want aborted", err)
	}
}

func TestRunRejectsInvalidSchedule(t *testing.T) {
	a := newTestApp(t, emptyJudge{}, &countingNotifier{}, Config{Schedule: "not a cron", RunTimeout: time.Second})
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("Run() expected error for invalid schedule")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	notifier := &countingNotifier{}
	a := newTestApp(t, emptyJudge{}, notifier, Config{Schedule: "0 0 * * *", RunOnStart: true, RunTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
	if len(notifier.texts) != 1 {
		t.Errorf("run on start sent %d messages, want 1", len(notifier.texts))
	}
}
