package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/bwmarrin/discordgo"

	"atcoder-notifier/internal/adapter/atcoder"
	"atcoder-notifier/internal/adapter/discord"
	"atcoder-notifier/internal/adapter/logging"
	"atcoder-notifier/internal/adapter/settings"
	"atcoder-notifier/internal/app"
	"atcoder-notifier/internal/config"
	"atcoder-notifier/internal/domain/ports"
	"atcoder-notifier/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

// provideSession returns nil when no bot token is configured.
func provideSession(cfg *config.Config) (*discordgo.Session, error) {
	token := strings.TrimSpace(cfg.DiscordBotToken)
	if token == "" {
		return nil, nil
	}
	if !strings.HasPrefix(strings.ToLower(token), "bot ") {
		token = "Bot " + token
	}
	s, err := discordgo.New(token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	return s, nil
}

func provideJudgeProvider(cfg *config.Config, logger ports.Logger) ports.JudgeProvider {
	return atcoder.New(cfg.RequestTimeout, logger)
}

func provideNotifier(cfg *config.Config, session *discordgo.Session, logger ports.Logger) (ports.Notifier, error) {
	if cfg.UsesWebhook() {
		return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger), nil
	}
	if session == nil {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required without DISCORD_WEBHOOK_URL")
	}
	return discord.NewSender(session, logger), nil
}

func provideSettingsStore(ctx context.Context, cfg *config.Config) (ports.SettingsStore, func(), error) {
	if cfg.SettingsBucket == "" {
		return settings.NewFileStore(cfg.SettingsPath), func() {}, nil
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create storage client: %w", err)
	}
	cleanup := func() { _ = client.Close() }
	return settings.NewGCSStore(client, cfg.SettingsBucket, cfg.SettingsObject), cleanup, nil
}

func provideCheckConfig(cfg *config.Config) usecase.DailyCheckConfig {
	return usecase.DailyCheckConfig{
		Concurrency:        cfg.UserConcurrency,
		Location:           usecase.JST,
		RequireDestination: !cfg.UsesWebhook(),
	}
}

// provideRouter returns nil when there is no session to receive commands.
func provideRouter(cfg *config.Config, session *discordgo.Session, roster *usecase.Roster, check *usecase.DailyCheck, logger ports.Logger) *discord.Router {
	if session == nil {
		return nil
	}
	return discord.NewRouter(session, cfg.DiscordGuildID, roster, check, logger, cfg.RunTimeout)
}

func provideAppConfig(cfg *config.Config) app.Config {
	return app.Config{
		Schedule:   cfg.ScheduleCron,
		RunOnStart: cfg.RunOnStart,
		RunTimeout: cfg.RunTimeout,
	}
}
