package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"atcoder-notifier/internal/domain/model"
)

var errUnavailable = errors.New("503 service unavailable")

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeJudge struct {
	models      model.ProblemModelIndex
	infos       model.ProblemInfoIndex
	submissions map[string][]model.Submission
	modelsErr   error
	infosErr    error
	userErrs    map[string]error
	delays      map[string]time.Duration
	entered     chan struct{}
	block       chan struct{}

	mu        sync.Mutex
	userCalls []string
	fromSeen  []int64
}

func (f *fakeJudge) GetProblemModels(ctx context.Context) (model.ProblemModelIndex, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	if f.modelsErr != nil {
		return nil, f.modelsErr
	}
	return f.models, nil
}

func (f *fakeJudge) GetProblemInfos(ctx context.Context) (model.ProblemInfoIndex, error) {
	if f.infosErr != nil {
		return nil, f.infosErr
	}
	return f.infos, nil
}

func (f *fakeJudge) GetUserSubmissions(ctx context.Context, username string, from int64) ([]model.Submission, error) {
	f.mu.Lock()
	f.userCalls = append(f.userCalls, username)
	f.fromSeen = append(f.fromSeen, from)
	f.mu.Unlock()

	if d := f.delays[username]; d > 0 {
		time.Sleep(d)
	}
	if err := f.userErrs[username]; err != nil {
		return nil, err
	}
	return f.submissions[username], nil
}

func (f *fakeJudge) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.userCalls...)
}

type sentText struct {
	channel string
	text    string
}

type fakeNotifier struct {
	mu            sync.Mutex
	texts         []sentText
	notifications [][]model.Notification
	channels      []string
	err           error
}

func (f *fakeNotifier) SendText(ctx context.Context, channelID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, sentText{channel: channelID, text: text})
	return f.err
}

func (f *fakeNotifier) SendNotifications(ctx context.Context, channelID string, notifications []model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels = append(f.channels, channelID)
	f.notifications = append(f.notifications, notifications)
	return f.err
}

type memoryStore struct {
	settings model.Settings
	saves    int
	loadErr  error
	saveErr  error
}

func (m *memoryStore) Load(ctx context.Context) (model.Settings, error) {
	if m.loadErr != nil {
		return model.Settings{}, m.loadErr
	}
	return m.settings.Clone(), nil
}

func (m *memoryStore) Save(ctx context.Context, settings model.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.settings = settings.Clone()
	return nil
}

func raw(v float64) *float64 { return &v }

func accepted(id int64, problemID, language string) model.Submission {
	return model.Submission{
		ID:        id,
		ProblemID: problemID,
		ContestID: problemID[:len(problemID)-2],
		Language:  language,
		Result:    model.ResultAccepted,
	}
}

func rejected(id int64, problemID, result string) model.Submission {
	s := accepted(id, problemID, "C++")
	s.Result = result
	return s
}
