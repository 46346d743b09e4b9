package atcoder

import "net/http"

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithBaseURL points the client at another AtCoder Problems deployment.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}
