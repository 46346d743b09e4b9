package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"atcoder-notifier/internal/domain/model"
)

func TestSummarize(t *testing.T) {
	models := model.ProblemModelIndex{
		"abc100_a": {Difficulty: raw(350)},
		"abc100_d": {Difficulty: raw(1800.4)},
		"abc100_e": {},
	}
	infos := model.ProblemInfoIndex{
		"abc100_a": {ID: "abc100_a", Title: "A. Happy Birthday!"},
		"abc100_d": {ID: "abc100_d", Title: "D. Patisserie ABC"},
	}

	submissions := []model.Submission{
		accepted(30, "abc100_d", "Go"),
		rejected(31, "abc100_a", "WA"),
		accepted(32, "abc100_a", "C++"),
		accepted(33, "abc100_e", "Rust"),
		accepted(34, "abc100_z", "Python"),
		rejected(35, "abc100_d", "TLE"),
	}

	got, ok := Summarize("alice", submissions, models, infos)
	if !ok {
		t.Fatal("Summarize() reported no accepts")
	}

	want := model.UserSummary{
		Username:      "alice",
		MaxDifficulty: 1800,
		Entries: []model.SolvedEntry{
			{
				ProblemID:     "abc100_d",
				Title:         "D. Patisserie ABC",
				Difficulty:    model.KnownDifficulty(1800),
				Tier:          model.ClassifyDifficulty(model.KnownDifficulty(1800)),
				Language:      "Go",
				SubmissionURL: "https://atcoder.jp/contests/abc100/submissions/30",
			},
			{
				ProblemID:     "abc100_a",
				Title:         "A. Happy Birthday!",
				Difficulty:    model.KnownDifficulty(353),
				Tier:          model.ClassifyDifficulty(model.KnownDifficulty(353)),
				Language:      "C++",
				SubmissionURL: "https://atcoder.jp/contests/abc100/submissions/32",
			},
			{
				ProblemID:     "abc100_e",
				Title:         "abc100_e",
				Difficulty:    model.UnknownDifficulty(),
				Tier:          model.UnknownTier,
				Language:      "Rust",
				SubmissionURL: "https://atcoder.jp/contests/abc100/submissions/33",
			},
			{
				ProblemID:     "abc100_z",
				Title:         "abc100_z",
				Difficulty:    model.UnknownDifficulty(),
				Tier:          model.UnknownTier,
				Language:      "Python",
				SubmissionURL: "https://atcoder.jp/contests/abc100/submissions/34",
			},
		},
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Difficulty{})); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeNoAccepts(t *testing.T) {
	submissions := []model.Submission{
		rejected(1, "abc100_a", "WA"),
		rejected(2, "abc100_a", "CE"),
	}
	if _, ok := Summarize("bob", submissions, nil, nil); ok {
		t.Error("Summarize() reported accepts for a user without AC")
	}
	if _, ok := Summarize("bob", nil, nil, nil); ok {
		t.Error("Summarize() reported accepts for an empty submission list")
	}
}

func TestSummarizeAllUnknownHasZeroMax(t *testing.T) {
	submissions := []model.Submission{accepted(1, "abc100_a", "C++")}
	got, ok := Summarize("carol", submissions, model.ProblemModelIndex{}, model.ProblemInfoIndex{})
	if !ok {
		t.Fatal("Summarize() reported no accepts")
	}
	if got.MaxDifficulty != 0 {
		t.Errorf("MaxDifficulty = %d, want 0", got.MaxDifficulty)
	}
	if got.Tier().Label != "灰" {
		t.Errorf("Tier() = %s, want 灰", got.Tier().Label)
	}
}

func TestSummarizeKeepsDuplicates(t *testing.T) {
	submissions := []model.Submission{
		accepted(1, "abc100_a", "C++"),
		accepted(2, "abc100_a", "C++"),
	}
	got, _ := Summarize("dave", submissions, nil, nil)
	if len(got.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want 2", len(got.Entries))
	}
}
