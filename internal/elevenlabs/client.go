package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client wraps the ElevenLabs text-to-speech endpoint. Synthesize
// returns raw MPEG audio; callers decide how to deliver it.
type Client struct {
	apiKey  string
	voiceID string
	base    string
	http    *http.Client
}

func NewClient(apiKey, voiceID string) *Client {
	return &Client{
		apiKey:  apiKey,
		voiceID: voiceID,
		base:    "https://api.elevenlabs.io/v1",
		http:    &http.Client{},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.voiceID != ""
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	url := fmt.Sprintf("%s/text-to-speech/%s", c.base, c.voiceID)

	body := ttsRequest{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	}
	b, _ := json.Marshal(body)

	r, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", "audio/mpeg")
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("elevenlabs api error (status %d): %s", resp.StatusCode, string(errBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio body: %w", err)
	}
	return audio, nil
}
