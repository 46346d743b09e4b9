package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

// JST is the reporting timezone of the daily check.
var JST = time.FixedZone("JST", 9*60*60)

const (
	defaultLookback    = 24 * time.Hour
	defaultConcurrency = 4
)

// DailyCheck fetches the recent accepted submissions of every registered
// user and posts a summary to the destination channel.
type DailyCheck struct {
	judge              ports.JudgeProvider
	notifier           ports.Notifier
	logger             ports.Logger
	concurrency        int
	lookback           time.Duration
	location           *time.Location
	requireDestination bool
	now                func() time.Time

	running sync.Mutex
}

// DailyCheckConfig controls optional behaviours of the check.
type DailyCheckConfig struct {
	// Concurrency bounds the per-user submission fetches in flight.
	Concurrency int
	// Lookback is the window of submissions considered, 24h by default.
	Lookback time.Duration
	// Location anchors the window, JST by default.
	Location *time.Location
	// RequireDestination rejects runs when settings carry no channel.
	RequireDestination bool
	// Now replaces the wall clock, mostly for tests.
	Now func() time.Time
}

// RunReport describes the outcome of one run.
type RunReport struct {
	From          time.Time
	Aborted       *GlobalFetchError
	UsersChecked  int
	FailedUsers   []string
	Summaries     []model.UserSummary
	Notifications int
	Fallback      bool
	SendFailures  int
}

// NewDailyCheck constructs a DailyCheck use case.
func NewDailyCheck(
	judge ports.JudgeProvider,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg DailyCheckConfig,
) *DailyCheck {
	d := &DailyCheck{
		judge:              judge,
		notifier:           notifier,
		logger:             logger,
		concurrency:        cfg.Concurrency,
		lookback:           cfg.Lookback,
		location:           cfg.Location,
		requireDestination: cfg.RequireDestination,
		now:                cfg.Now,
	}
	if d.concurrency <= 0 {
		d.concurrency = defaultConcurrency
	}
	if d.lookback <= 0 {
		d.lookback = defaultLookback
	}
	if d.location == nil {
		d.location = JST
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

type userOutcome struct {
	user        string
	submissions []model.Submission
	err         error
}

// Run executes one check over a snapshot of the settings. Only one run may
// be active at a time; a concurrent call returns ErrRunInProgress. A global
// fetch failure is reported to the channel and returned as *GlobalFetchError.
func (d *DailyCheck) Run(ctx context.Context, settings model.Settings) (*RunReport, error) {
	if !d.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer d.running.Unlock()

	if d.requireDestination && settings.Channel == "" {
		return nil, ErrNoDestination
	}

	start := time.Now()
	report := &RunReport{From: d.now().In(d.location).Add(-d.lookback)}
	from := report.From.Unix()
	d.logger.Info(ctx, "starting daily check", "users", len(settings.Users), "from_second", from)

	models, err := d.judge.GetProblemModels(ctx)
	if err != nil {
		return report, d.abort(ctx, settings.Channel, report, ResourceProblemModels, err)
	}

	infos, err := d.judge.GetProblemInfos(ctx)
	if err != nil {
		return report, d.abort(ctx, settings.Channel, report, ResourceProblemInfos, err)
	}

	outcomes := d.fetchSubmissions(ctx, settings.Users, from)
	if err := ctx.Err(); err != nil {
		d.logger.Warn(ctx, "daily check abandoned", "error", err)
		return report, err
	}

	for _, o := range outcomes {
		report.UsersChecked++
		if o.err != nil {
			failure := &UserFetchError{User: o.user, Err: o.err}
			d.logger.Error(ctx, "failed to fetch submissions", "user", o.user, "error", failure)
			report.FailedUsers = append(report.FailedUsers, o.user)
			d.sendText(ctx, settings.Channel, report, UserFetchFailedMessage(o.user))
			continue
		}

		summary, ok := Summarize(o.user, o.submissions, models, infos)
		if !ok {
			d.logger.Debug(ctx, "no accepts", "user", o.user)
			continue
		}
		report.Summaries = append(report.Summaries, summary)
	}

	composition := Compose(report.Summaries)
	if composition.Fallback != "" {
		report.Fallback = true
		d.sendText(ctx, settings.Channel, report, composition.Fallback)
	} else {
		report.Notifications = len(composition.Notifications)
		if err := d.notifier.SendNotifications(ctx, settings.Channel, composition.Notifications); err != nil {
			report.SendFailures++
			d.logger.Error(ctx, "failed to send notifications", "error", err)
		}
	}

	d.logger.Info(ctx, "daily check completed",
		"duration", time.Since(start),
		"summaries", len(report.Summaries),
		"failed_users", len(report.FailedUsers))
	return report, nil
}

// fetchSubmissions fans out over users and returns outcomes in input order
// regardless of completion order.
func (d *DailyCheck) fetchSubmissions(ctx context.Context, users []string, from int64) []userOutcome {
	outcomes := make([]userOutcome, len(users))

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			submissions, err := d.judge.GetUserSubmissions(ctx, user, from)
			outcomes[i] = userOutcome{user: user, submissions: submissions, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (d *DailyCheck) abort(ctx context.Context, channel string, report *RunReport, resource Resource, err error) error {
	failure := &GlobalFetchError{Resource: resource, Err: err}
	report.Aborted = failure
	d.logger.Error(ctx, "daily check aborted", "resource", resource, "error", err)
	d.sendText(ctx, channel, report, GlobalFetchFailedMessage(resource))
	return failure
}

func (d *DailyCheck) sendText(ctx context.Context, channel string, report *RunReport, text string) {
	if err := d.notifier.SendText(ctx, channel, text); err != nil {
		report.SendFailures++
		d.logger.Error(ctx, "failed to send message", "error", err)
	}
}

// IsAborted reports whether err ended a run because of a global fetch failure.
func IsAborted(err error) bool {
	var failure *GlobalFetchError
	return errors.As(err, &failure)
}
