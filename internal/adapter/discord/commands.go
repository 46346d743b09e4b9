package discord

import "github.com/bwmarrin/discordgo"

// Commands are the slash commands registered by the bot.
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "channel",
		Description: "メッセージを送信するチャンネルを設定します。",
	},
	{
		Name:        "register",
		Description: "AtCoderのユーザー名を登録します。カンマ区切りで複数人指定できます。",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "usernames",
			Description: "AtCoderのユーザー名(カンマ区切り)",
			Required:    true,
		}},
	},
	{
		Name:        "unregister",
		Description: "AtCoderのユーザー名を登録解除します。",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "username",
			Description: "AtCoderのユーザー名",
			Required:    true,
		}},
	},
	{
		Name:        "registerlist",
		Description: "登録されているユーザーの一覧を表示します。",
	},
	{
		Name:        "run",
		Description: "即時実行します。",
	},
}
