package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type embeddingsRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	EncodingFormat string   `json:"encoding_format"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *Client) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	if req.Model == "" {
		return provider.EmbeddingResponse{}, invalidRequest("model is required")
	}
	if len(req.Inputs) == 0 {
		return provider.EmbeddingResponse{}, invalidRequest("inputs are required")
	}

	body, err := json.Marshal(embeddingsRequest{
		Model:          req.Model,
		Input:          req.Inputs,
		EncodingFormat: "float",
	})
	if err != nil {
		return provider.EmbeddingResponse{}, requestError("marshal_error", err)
	}

	u, err := c.endpointURL("/embeddings")
	if err != nil {
		return provider.EmbeddingResponse{}, requestError("url_error", err)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodPost, u, body, c.headers())
	if err != nil {
		return provider.EmbeddingResponse{}, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.EmbeddingResponse{}, readStatusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.EmbeddingResponse{}, requestError("read_error", err)
	}
	var out embeddingsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return provider.EmbeddingResponse{}, requestError("decode_error", err)
	}
	if len(out.Data) != len(req.Inputs) {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: providerName, Code: "invalid_response", Message: "embedding count does not match input count"}
	}

	// The API is documented to return data in input order, but index is
	// authoritative.
	vectors := make([][]float64, len(out.Data))
	for _, d := range out.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return provider.EmbeddingResponse{}, &provider.Error{Provider: providerName, Code: "invalid_response", Message: "embedding index out of range"}
		}
		vectors[d.Index] = d.Embedding
	}

	return provider.EmbeddingResponse{
		Vectors: vectors,
		Usage: provider.Usage{
			PromptTokens: out.Usage.PromptTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
		RawResponse: raw,
	}, nil
}

var _ provider.EmbeddingProvider = (*Client)(nil)
