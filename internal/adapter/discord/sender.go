package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

// Sender posts to guild channels through the bot's REST session.
type Sender struct {
	session *discordgo.Session
	logger  ports.Logger
}

var _ ports.Notifier = (*Sender)(nil)

// NewSender creates a Sender on top of session.
func NewSender(session *discordgo.Session, logger ports.Logger) *Sender {
	return &Sender{session: session, logger: logger}
}

// SendText posts a plain message to channelID.
func (s *Sender) SendText(ctx context.Context, channelID, text string) error {
	return s.send(ctx, channelID, &discordgo.MessageSend{Content: truncate(text, maxContent)})
}

// SendNotifications posts the notifications as embeds to channelID.
func (s *Sender) SendNotifications(ctx context.Context, channelID string, notifications []model.Notification) error {
	for _, batch := range batchEmbeds(toEmbeds(notifications)) {
		if err := s.send(ctx, channelID, &discordgo.MessageSend{Embeds: batch}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sender) send(ctx context.Context, channelID string, msg *discordgo.MessageSend) error {
	if channelID == "" {
		return fmt.Errorf("channel id is empty")
	}
	if _, err := s.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to channel %s: %w", channelID, err)
	}
	s.logger.Info(ctx, "message sent", "channel", channelID, "embeds", len(msg.Embeds))
	return nil
}
