package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"atcoder-notifier/internal/adapter/discord"
	"atcoder-notifier/internal/domain/ports"
	"atcoder-notifier/internal/usecase"
)

// Config controls the scheduler behaviour.
type Config struct {
	Schedule   string
	RunOnStart bool
	RunTimeout time.Duration
}

// App manages the lifecycle of the Discord session and the daily scheduler.
type App struct {
	cron    *cron.Cron
	check   *usecase.DailyCheck
	roster  *usecase.Roster
	session *discordgo.Session
	router  *discord.Router
	logger  ports.Logger
	cfg     Config
}

// New constructs an App instance. session and router are nil when the bot
// runs without a token.
func New(
	check *usecase.DailyCheck,
	roster *usecase.Roster,
	session *discordgo.Session,
	router *discord.Router,
	logger ports.Logger,
	cfg Config,
) *App {
	return &App{
		cron:    cron.New(cron.WithLocation(usecase.JST)),
		check:   check,
		roster:  roster,
		session: session,
		router:  router,
		logger:  logger,
		cfg:     cfg,
	}
}

// Run opens the gateway, registers the slash commands and runs the check
// according to the cron schedule until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	if a.session != nil {
		if err := a.session.Open(); err != nil {
			return fmt.Errorf("open discord session: %w", err)
		}
		defer a.session.Close()
		a.logger.Info(ctx, "logged in", "user", a.session.State.User.Username, "id", a.session.State.User.ID)

		if err := a.router.Register(); err != nil {
			return err
		}
		remove := a.router.Handlers(ctx)
		defer remove()
	} else {
		a.logger.Warn(ctx, "no bot token configured, slash commands disabled")
	}

	if a.cfg.RunOnStart {
		a.logger.Info(ctx, "running first check immediately")
		a.runScheduled(ctx)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.cfg.Schedule, "location", usecase.JST.String())
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// CheckOnce runs the check a single time against the current settings.
func (a *App) CheckOnce(ctx context.Context) (*usecase.RunReport, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RunTimeout)
	defer cancel()
	return a.check.Run(ctx, a.roster.Snapshot())
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.cfg.Schedule, func() {
		a.runScheduled(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", a.cfg.Schedule, err)
	}
	return nil
}

func (a *App) runScheduled(ctx context.Context) {
	report, err := a.CheckOnce(ctx)
	switch {
	case errors.Is(err, usecase.ErrRunInProgress):
		a.logger.Warn(ctx, "scheduled check skipped, another run is in progress")
	case err != nil:
		a.logger.Error(ctx, "scheduled check failed", "error", err)
	default:
		a.logger.Info(ctx, "scheduled check finished",
			"summaries", len(report.Summaries),
			"failed_users", len(report.FailedUsers))
	}
}
