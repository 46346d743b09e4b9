package atcoder

type problemModelDTO struct {
	Difficulty     *float64 `json:"difficulty"`
	IsExperimental bool     `json:"is_experimental"`
}

type problemDTO struct {
	ID        string `json:"id"`
	ContestID string `json:"contest_id"`
	Title     string `json:"title"`
	Name      string `json:"name"`
}

type submissionDTO struct {
	ID          int64  `json:"id"`
	EpochSecond int64  `json:"epoch_second"`
	ProblemID   string `json:"problem_id"`
	ContestID   string `json:"contest_id"`
	UserID      string `json:"user_id"`
	Language    string `json:"language"`
	Result      string `json:"result"`
}
