package model

import "fmt"

// ResultAccepted is the judge verdict of a submission that passed every test.
const ResultAccepted = "AC"

// ProblemModel is the statistical model estimated for one problem.
// Difficulty is nil when no estimate exists.
type ProblemModel struct {
	Difficulty     *float64
	IsExperimental bool
}

// ProblemModelIndex maps a problem id to its model.
type ProblemModelIndex map[string]ProblemModel

// ProblemInfo carries the human readable metadata of a problem.
type ProblemInfo struct {
	ID        string
	ContestID string
	Title     string
}

// ProblemInfoIndex maps a problem id to its metadata.
type ProblemInfoIndex map[string]ProblemInfo

// Submission is a single judged submission of a user.
type Submission struct {
	ID          int64
	ProblemID   string
	ContestID   string
	UserID      string
	Language    string
	Result      string
	EpochSecond int64
}

// Accepted reports whether the submission received the AC verdict.
func (s Submission) Accepted() bool {
	return s.Result == ResultAccepted
}

// SubmissionURL returns the public page of a submission.
func SubmissionURL(contestID string, submissionID int64) string {
	return fmt.Sprintf("https://atcoder.jp/contests/%s/submissions/%d", contestID, submissionID)
}

// UserProfileURL returns the public profile page of a user.
func UserProfileURL(username string) string {
	return fmt.Sprintf("https://atcoder.jp/users/%s", username)
}
