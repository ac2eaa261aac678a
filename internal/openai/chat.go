package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *Client) Complete(ctx context.Context, req provider.ChatRequest) (provider.ChatResponse, error) {
	if req.Model == "" {
		return provider.ChatResponse{}, invalidRequest("model is required")
	}
	if len(req.Messages) == 0 {
		return provider.ChatResponse{}, invalidRequest("messages are required")
	}

	payload := chatCompletionRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, m := range req.Messages {
		payload.Messages = append(payload.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return provider.ChatResponse{}, requestError("marshal_error", err)
	}

	u, err := c.endpointURL("/chat/completions")
	if err != nil {
		return provider.ChatResponse{}, requestError("url_error", err)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodPost, u, body, c.headers())
	if err != nil {
		return provider.ChatResponse{}, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.ChatResponse{}, readStatusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.ChatResponse{}, requestError("read_error", err)
	}
	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return provider.ChatResponse{}, requestError("decode_error", err)
	}
	if len(out.Choices) == 0 {
		return provider.ChatResponse{}, &provider.Error{Provider: providerName, Code: "invalid_response", Message: "response has no choices"}
	}

	return provider.ChatResponse{
		Text:         out.Choices[0].Message.Content,
		FinishReason: out.Choices[0].FinishReason,
		Usage: provider.Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
		RawResponse: raw,
	}, nil
}

var _ provider.ChatProvider = (*Client)(nil)
