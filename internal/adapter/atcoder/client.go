package atcoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

const (
	defaultBaseURL    = "https://kenkoooo.com/atcoder"
	problemModelsPath = "/resources/problem-models.json"
	problemsPath      = "/resources/problems.json"
	submissionsPath   = "/atcoder-api/v3/user/submissions"
)

// Client implements JudgeProvider using the AtCoder Problems public endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ports.Logger
}

var _ ports.JudgeProvider = (*Client)(nil)

// New creates a new AtCoder Problems client. timeout bounds every request.
func New(timeout time.Duration, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetProblemModels retrieves the difficulty models of every problem.
func (c *Client) GetProblemModels(ctx context.Context) (model.ProblemModelIndex, error) {
	var payload map[string]problemModelDTO
	if err := c.getJSON(ctx, problemModelsPath, nil, &payload); err != nil {
		return nil, err
	}

	index := make(model.ProblemModelIndex, len(payload))
	for id, m := range payload {
		index[id] = model.ProblemModel{
			Difficulty:     m.Difficulty,
			IsExperimental: m.IsExperimental,
		}
	}
	return index, nil
}

// GetProblemInfos retrieves problem titles. The endpoint serves an array of
// problems; an object keyed by problem id is accepted as well.
func (c *Client) GetProblemInfos(ctx context.Context) (model.ProblemInfoIndex, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, problemsPath, nil, &raw); err != nil {
		return nil, err
	}

	var problems []problemDTO
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var keyed map[string]problemDTO
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		problems = make([]problemDTO, 0, len(keyed))
		for id, p := range keyed {
			if p.ID == "" {
				p.ID = id
			}
			problems = append(problems, p)
		}
	} else if err := json.Unmarshal(trimmed, &problems); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	index := make(model.ProblemInfoIndex, len(problems))
	for _, p := range problems {
		if p.ID == "" {
			continue
		}
		title := p.Title
		if title == "" {
			title = p.Name
		}
		index[p.ID] = model.ProblemInfo{
			ID:        p.ID,
			ContestID: p.ContestID,
			Title:     strings.TrimSpace(html.UnescapeString(title)),
		}
	}
	return index, nil
}

// GetUserSubmissions returns the submissions of username made at or after
// fromEpochSecond, in the order served by the API.
func (c *Client) GetUserSubmissions(ctx context.Context, username string, fromEpochSecond int64) ([]model.Submission, error) {
	q := url.Values{}
	q.Set("user", username)
	q.Set("from_second", strconv.FormatInt(fromEpochSecond, 10))

	var payload []submissionDTO
	if err := c.getJSON(ctx, submissionsPath, q, &payload); err != nil {
		return nil, err
	}

	submissions := make([]model.Submission, 0, len(payload))
	for _, s := range payload {
		submissions = append(submissions, model.Submission{
			ID:          s.ID,
			ProblemID:   s.ProblemID,
			ContestID:   s.ContestID,
			UserID:      s.UserID,
			Language:    s.Language,
			Result:      s.Result,
			EpochSecond: s.EpochSecond,
		})
	}
	return submissions, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	start := time.Now()
	c.logger.Info(ctx, "accessing", "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "url", u, "duration_ms", time.Since(start).Milliseconds(), "error", err)
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Info(ctx, "request completed", "url", u, "status_code", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{URL: u, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	body, err := decompress(resp)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
