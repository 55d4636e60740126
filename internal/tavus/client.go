package tavus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client wraps the Tavus video generation API: coaching text in,
// avatar video URL out.
type Client struct {
	apiKey    string
	replicaID string
	base      string
	http      *http.Client
}

func NewClient(apiKey, replicaID string) *Client {
	return &Client{
		apiKey:    apiKey,
		replicaID: replicaID,
		base:      "https://tavusapi.com/v2",
		http:      &http.Client{},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.replicaID != ""
}

type videoRequest struct {
	ReplicaID string `json:"replica_id"`
	Script    string `json:"script"`
	VideoName string `json:"video_name"`
}

type videoResponse struct {
	VideoURL string `json:"video_url"`
}

func (c *Client) GenerateVideo(ctx context.Context, script string) (string, error) {
	body := videoRequest{
		ReplicaID: c.replicaID,
		Script:    script,
		VideoName: "Interview Response",
	}
	b, _ := json.Marshal(body)

	r, err := http.NewRequestWithContext(ctx, "POST", c.base+"/videos", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("tavus api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var out videoResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if out.VideoURL == "" {
		return "", fmt.Errorf("no video url returned")
	}
	return out.VideoURL, nil
}
