// Package assistant provides the HTTP seam through which external
// collaborators — a chat assistant, or the batch tool in this package —
// reach the core /cgol/game endpoint, the same way the teacher's
// internal/client package wrapped hasher-host's REST API for its own CLI
// and monitoring tools.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GameResult mirrors the wire shape of POST /cgol/game's response. It is a
// plain struct rather than an import of internal/engine so that this
// client has no dependency on engine internals — it only knows the wire
// contract in spec §6.
type GameResult struct {
	NumGenerations int    `json:"num_generations"`
	Score          int    `json:"score"`
	StopReason     string `json:"stop_reason"`
}

// Client calls a running cgol server's single-word endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New constructs a Client against baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// PlayWord calls POST /cgol/game with word and returns the decoded result.
func (c *Client) PlayWord(ctx context.Context, word string) (GameResult, error) {
	body, err := json.Marshal(map[string]string{"word": word})
	if err != nil {
		return GameResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/cgol/game", bytes.NewReader(body))
	if err != nil {
		return GameResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return GameResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return GameResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return GameResult{}, fmt.Errorf("cgol server returned %d: %s", resp.StatusCode, string(data))
	}

	var result GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return GameResult{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return result, nil
}
