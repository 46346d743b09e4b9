package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (r *Router) respond(ic *discordgo.InteractionCreate, content string) {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: truncate(content, maxContent),
		},
	})
	if err != nil {
		r.logger.Error(r.ctx, "respond failed", "error", err)
	}
}

// deferReply acknowledges an interaction whose answer takes more than 3s.
func (r *Router) deferReply(ic *discordgo.InteractionCreate) {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		r.logger.Error(r.ctx, "defer failed", "error", err)
	}
}

func (r *Router) followup(ic *discordgo.InteractionCreate, content string) {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content: truncate(content, maxContent),
	})
	if err != nil {
		r.logger.Error(r.ctx, "followup failed", "error", err)
	}
}

func optStr(data discordgo.ApplicationCommandInteractionData, name string) (string, bool) {
	for _, o := range data.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

func invoker(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}
