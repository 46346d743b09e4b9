package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
	"atcoder-notifier/internal/usecase"
)

const commandTimeout = 10 * time.Second

// CheckRunner runs the daily check on demand.
type CheckRunner interface {
	Run(ctx context.Context, settings model.Settings) (*usecase.RunReport, error)
}

// Router dispatches slash commands to the roster and the check.
type Router struct {
	s          *discordgo.Session
	guildID    string
	roster     *usecase.Roster
	check      CheckRunner
	logger     ports.Logger
	runTimeout time.Duration

	ctx context.Context
}

// NewRouter creates a Router. An empty guildID registers global commands.
func NewRouter(
	s *discordgo.Session,
	guildID string,
	roster *usecase.Roster,
	check CheckRunner,
	logger ports.Logger,
	runTimeout time.Duration,
) *Router {
	return &Router{
		s:          s,
		guildID:    guildID,
		roster:     roster,
		check:      check,
		logger:     logger,
		runTimeout: runTimeout,
		ctx:        context.Background(),
	}
}

// Register overwrites the application commands with Commands.
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	if _, err := r.s.ApplicationCommandBulkOverwrite(appID, r.guildID, Commands); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}

// Handlers installs the interaction handler and returns its remover.
// Commands run under ctx and are cancelled with it.
func (r *Router) Handlers(ctx context.Context) func() {
	r.ctx = ctx
	return r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(ic)
	})
}

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	r.logger.Info(r.ctx, "slash command", "name", data.Name, "by", invoker(ic), "guild", ic.GuildID, "channel", ic.ChannelID)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error(r.ctx, "panic in slash command", "name", data.Name, "panic", rec)
		}
	}()

	switch data.Name {
	case "channel":
		r.respond(ic, r.setChannel(ic.ChannelID))

	case "register":
		usernames, _ := optStr(data, "usernames")
		r.respond(ic, r.register(usernames))

	case "unregister":
		username, _ := optStr(data, "username")
		r.respond(ic, r.unregister(username))

	case "registerlist":
		r.respond(ic, fmt.Sprintf("登録されているユーザーの一覧です。\n%s", strings.Join(r.roster.Users(), ", ")))

	case "run":
		r.deferReply(ic)
		r.followup(ic, r.runNow())

	default:
		r.respond(ic, "不明なコマンドです。")
	}
}

func (r *Router) setChannel(channelID string) string {
	ctx, cancel := context.WithTimeout(r.ctx, commandTimeout)
	defer cancel()

	if err := r.roster.SetChannel(ctx, channelID); err != nil {
		r.logger.Error(ctx, "set channel failed", "error", err)
		return "チャンネルを設定できませんでした。"
	}
	r.logger.Info(ctx, "channel selected", "channel", channelID)
	return "チャンネルを設定しました。"
}

func (r *Router) register(usernames string) string {
	ctx, cancel := context.WithTimeout(r.ctx, commandTimeout)
	defer cancel()

	added, err := r.roster.Register(ctx, usernames)
	if err != nil {
		r.logger.Error(ctx, "register failed", "error", err)
		return "ユーザーを登録できませんでした。"
	}
	if len(added) == 0 {
		return "ユーザー名を指定してください。"
	}
	r.logger.Info(ctx, "users registered", "users", added)
	return fmt.Sprintf("ユーザー(%s)を登録しました。", usernames)
}

func (r *Router) unregister(username string) string {
	ctx, cancel := context.WithTimeout(r.ctx, commandTimeout)
	defer cancel()

	err := r.roster.Unregister(ctx, username)
	switch {
	case errors.Is(err, usecase.ErrUserNotRegistered):
		return fmt.Sprintf("ユーザー(%s)は登録されていません。", username)
	case err != nil:
		r.logger.Error(ctx, "unregister failed", "error", err)
		return "ユーザーを登録解除できませんでした。"
	}
	r.logger.Info(ctx, "user unregistered", "user", username)
	return fmt.Sprintf("ユーザー(%s)を登録解除しました。", username)
}

func (r *Router) runNow() string {
	ctx, cancel := context.WithTimeout(r.ctx, r.runTimeout)
	defer cancel()

	_, err := r.check.Run(ctx, r.roster.Snapshot())
	switch {
	case errors.Is(err, usecase.ErrRunInProgress):
		return "実行中です。しばらくお待ちください。"
	case errors.Is(err, usecase.ErrNoDestination):
		return "送信先チャンネルが設定されていません。/channel で設定してください。"
	case err != nil && !usecase.IsAborted(err):
		r.logger.Error(ctx, "manual run failed", "error", err)
	}
	return "完了！"
}
