package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"atcoder-notifier/internal/domain/model"
)

// Discord message limits.
const (
	maxTitle            = 256
	maxDescription      = 4096
	maxFieldName        = 256
	maxFieldValue       = 1024
	maxFieldsPerEmbed   = 25
	maxEmbedsPerMessage = 10
	maxMessageChars     = 6000
	maxContent          = 2000
)

// toEmbeds converts notifications into embeds. A notification with more
// fields than one embed can hold continues in further embeds carrying the
// same title, suffixed with a page number.
func toEmbeds(notifications []model.Notification) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(notifications))
	for _, n := range notifications {
		pages := paginateFields(convertFields(n.Fields), maxMessageChars-maxTitle-maxDescription/4)
		for i, fields := range pages {
			title := truncate(n.Title, maxTitle-8)
			description := truncate(n.Description, maxDescription)
			if i > 0 {
				title = fmt.Sprintf("%s (%d)", title, i+1)
				description = ""
			}
			embeds = append(embeds, &discordgo.MessageEmbed{
				Title:       title,
				URL:         n.URL,
				Description: description,
				Color:       n.Color,
				Fields:      fields,
			})
		}
	}
	return embeds
}

func convertFields(fields []model.NotificationField) []*discordgo.MessageEmbedField {
	if len(fields) == 0 {
		return nil
	}

	result := make([]*discordgo.MessageEmbedField, 0, len(fields))
	for _, field := range fields {
		result = append(result, &discordgo.MessageEmbedField{
			Name:   truncate(field.Name, maxFieldName),
			Value:  truncate(field.Value, maxFieldValue),
			Inline: field.Inline,
		})
	}
	return result
}

// paginateFields splits fields into pages of at most maxFieldsPerEmbed
// fields and roughly budget characters. It always returns at least one page.
func paginateFields(fields []*discordgo.MessageEmbedField, budget int) [][]*discordgo.MessageEmbedField {
	pages := [][]*discordgo.MessageEmbedField{}
	var page []*discordgo.MessageEmbedField
	size := 0
	for _, f := range fields {
		fs := utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
		if len(page) > 0 && (len(page) == maxFieldsPerEmbed || size+fs > budget) {
			pages = append(pages, page)
			page, size = nil, 0
		}
		page = append(page, f)
		size += fs
	}
	if len(page) > 0 || len(pages) == 0 {
		pages = append(pages, page)
	}
	return pages
}

// batchEmbeds groups embeds into messages that respect the per-message
// embed count and character limits, preserving order.
func batchEmbeds(embeds []*discordgo.MessageEmbed) [][]*discordgo.MessageEmbed {
	var batches [][]*discordgo.MessageEmbed
	var batch []*discordgo.MessageEmbed
	size := 0
	for _, e := range embeds {
		es := embedSize(e)
		if len(batch) > 0 && (len(batch) == maxEmbedsPerMessage || size+es > maxMessageChars) {
			batches = append(batches, batch)
			batch, size = nil, 0
		}
		batch = append(batch, e)
		size += es
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}
	return batches
}

func embedSize(e *discordgo.MessageEmbed) int {
	n := utf8.RuneCountInString(e.Title) + utf8.RuneCountInString(e.Description)
	for _, f := range e.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	return n
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit-3]) + "..."
}
