package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	DiscordBotToken   string
	DiscordGuildID    string
	DiscordWebhookURL string
	SettingsPath      string
	SettingsBucket    string
	SettingsObject    string
	ScheduleCron      string
	RequestTimeout    time.Duration
	RunTimeout        time.Duration
	UserConcurrency   int
	RunOnStart        bool
	LogLevel          string
}

const (
	defaultCron           = "0 0 * * *" // 00:00 JST every day
	defaultSettingsPath   = "settings.json"
	defaultSettingsObject = "settings.json"
	defaultTimeout        = 30 * time.Second
	defaultRunTimeout     = 5 * time.Minute
	defaultConcurrency    = 4
	defaultLogLevel       = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DiscordBotToken:   getenvDefault("DISCORD_BOT_TOKEN", ""),
		DiscordGuildID:    getenvDefault("DISCORD_GUILD_ID", ""),
		DiscordWebhookURL: getenvDefault("DISCORD_WEBHOOK_URL", ""),
		SettingsPath:      getenvDefault("SETTINGS_PATH", defaultSettingsPath),
		SettingsBucket:    getenvDefault("SETTINGS_BUCKET", ""),
		SettingsObject:    getenvDefault("SETTINGS_OBJECT", defaultSettingsObject),
		ScheduleCron:      getenvDefault("SCHEDULE_CRON", defaultCron),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		RunTimeout:        parseDurationDefault("RUN_TIMEOUT", defaultRunTimeout),
		UserConcurrency:   parseIntDefault("USER_CONCURRENCY", defaultConcurrency),
		RunOnStart:        parseBoolDefault("RUN_ON_START", false),
		LogLevel:          getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.DiscordBotToken == "" && cfg.DiscordWebhookURL == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN or DISCORD_WEBHOOK_URL is required")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}

	if cfg.UserConcurrency <= 0 {
		cfg.UserConcurrency = defaultConcurrency
	}

	return cfg, nil
}

// UsesWebhook reports whether notifications go to a fixed webhook rather
// than the channel chosen with /channel.
func (c *Config) UsesWebhook() bool {
	return c.DiscordWebhookURL != ""
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
