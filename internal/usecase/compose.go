package usecase

import (
	"fmt"
	"strings"

	"atcoder-notifier/internal/domain/model"
)

// Messages posted to the destination channel.
const (
	NobodySolvedMessage        = "昨日は誰もACしませんでした。"
	ProblemModelsFailedMessage = "Difficultyデータにアクセスできませんでした。"
	ProblemInfosFailedMessage  = "問題の情報データにアクセスできませんでした。"
	submissionLinkLabel        = "提出"
)

// UserFetchFailedMessage is posted when the submissions of user could not be fetched.
func UserFetchFailedMessage(user string) string {
	return fmt.Sprintf("%s: 提出データにアクセスできませんでした。", user)
}

// GlobalFetchFailedMessage returns the abort text for a global resource.
func GlobalFetchFailedMessage(resource Resource) string {
	if resource == ResourceProblemInfos {
		return ProblemInfosFailedMessage
	}
	return ProblemModelsFailedMessage
}

// Composition is the outbound payload of a run: either one notification
// per user or the fallback text.
type Composition struct {
	Notifications []model.Notification
	Fallback      string
}

// Compose turns summaries into notifications, keeping their order.
func Compose(summaries []model.UserSummary) Composition {
	if len(summaries) == 0 {
		return Composition{Fallback: NobodySolvedMessage}
	}

	notifications := make([]model.Notification, 0, len(summaries))
	for _, s := range summaries {
		notifications = append(notifications, composeUser(s))
	}
	return Composition{Notifications: notifications}
}

func composeUser(s model.UserSummary) model.Notification {
	fields := make([]model.NotificationField, 0, len(s.Entries))
	for _, e := range s.Entries {
		fields = append(fields, model.NotificationField{
			Name:   e.Title,
			Value:  formatEntry(e),
			Inline: false,
		})
	}

	return model.Notification{
		Title:  fmt.Sprintf("%sさんが昨日ACした問題", s.Username),
		URL:    model.UserProfileURL(s.Username),
		Color:  s.Tier().Color,
		Fields: fields,
	}
}

func formatEntry(e model.SolvedEntry) string {
	return strings.Join([]string{
		fmt.Sprintf("Diff: %s(%s)", e.Difficulty, e.Tier.Label),
		e.Language,
		fmt.Sprintf("[%s](%s)", submissionLinkLabel, e.SubmissionURL),
	}, " | ")
}
