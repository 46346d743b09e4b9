package model

// SolvedEntry is one accepted submission prepared for display.
type SolvedEntry struct {
	ProblemID     string
	Title         string
	Difficulty    Difficulty
	Tier          RateTier
	Language      string
	SubmissionURL string
}

// UserSummary aggregates the accepted submissions of one user in a run.
// MaxDifficulty is 0 when no entry has a known difficulty.
type UserSummary struct {
	Username      string
	Entries       []SolvedEntry
	MaxDifficulty int
}

// Tier returns the tier owning the highest difficulty solved.
func (s UserSummary) Tier() RateTier {
	return ClassifyDifficulty(KnownDifficulty(s.MaxDifficulty))
}
