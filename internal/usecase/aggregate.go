package usecase

import "atcoder-notifier/internal/domain/model"

// Summarize keeps the accepted submissions of one user, in the order
// received, and resolves their titles, difficulties and tiers. The second
// return value is false when the user accepted nothing.
func Summarize(username string, submissions []model.Submission, models model.ProblemModelIndex, infos model.ProblemInfoIndex) (model.UserSummary, bool) {
	summary := model.UserSummary{Username: username}

	for _, s := range submissions {
		if !s.Accepted() {
			continue
		}

		difficulty := lookupDifficulty(models, s.ProblemID)
		summary.Entries = append(summary.Entries, model.SolvedEntry{
			ProblemID:     s.ProblemID,
			Title:         lookupTitle(infos, s.ProblemID),
			Difficulty:    difficulty,
			Tier:          model.ClassifyDifficulty(difficulty),
			Language:      s.Language,
			SubmissionURL: model.SubmissionURL(s.ContestID, s.ID),
		})

		if v, ok := difficulty.Value(); ok && v > summary.MaxDifficulty {
			summary.MaxDifficulty = v
		}
	}

	return summary, len(summary.Entries) > 0
}

func lookupTitle(infos model.ProblemInfoIndex, problemID string) string {
	if info, ok := infos[problemID]; ok && info.Title != "" {
		return info.Title
	}
	return problemID
}

func lookupDifficulty(models model.ProblemModelIndex, problemID string) model.Difficulty {
	m, ok := models[problemID]
	if !ok {
		return model.UnknownDifficulty()
	}
	return model.NormalizeDifficulty(m.Difficulty)
}
