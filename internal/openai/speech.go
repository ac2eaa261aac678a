package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type speechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

func (c *Client) Synthesize(ctx context.Context, req provider.SpeechRequest) (provider.SpeechResponse, error) {
	if req.Model == "" {
		return provider.SpeechResponse{}, invalidRequest("model is required")
	}
	if req.Voice == "" {
		return provider.SpeechResponse{}, invalidRequest("voice is required")
	}
	if req.Text == "" {
		return provider.SpeechResponse{}, invalidRequest("text is required")
	}

	body, err := json.Marshal(speechRequest{
		Model: req.Model,
		Input: req.Text,
		Voice: req.Voice,
	})
	if err != nil {
		return provider.SpeechResponse{}, requestError("marshal_error", err)
	}

	u, err := c.endpointURL("/audio/speech")
	if err != nil {
		return provider.SpeechResponse{}, requestError("url_error", err)
	}

	h := c.headers()
	h.Set("Content-Type", "application/json")

	resp, err := httpx.Do(ctx, c.cfg.HTTPClient, http.MethodPost, u, body, h)
	if err != nil {
		return provider.SpeechResponse{}, networkError(err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.SpeechResponse{}, requestError("read_error", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.SpeechResponse{}, statusError(resp.StatusCode, rawBody)
	}

	return provider.SpeechResponse{
		AudioBytes: rawBody,
		MediaType:  resp.Header.Get("Content-Type"),
	}, nil
}

var _ provider.SpeechProvider = (*Client)(nil)
