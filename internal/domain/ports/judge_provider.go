package ports

import (
	"context"

	"atcoder-notifier/internal/domain/model"
)

// JudgeProvider defines access to contest judge resources.
type JudgeProvider interface {
	GetProblemModels(ctx context.Context) (model.ProblemModelIndex, error)
	GetProblemInfos(ctx context.Context) (model.ProblemInfoIndex, error)
	GetUserSubmissions(ctx context.Context, username string, fromEpochSecond int64) ([]model.Submission, error)
}
