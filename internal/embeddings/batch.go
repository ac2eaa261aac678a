package embeddings

import (
	"context"
	"fmt"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

// DefaultBatchSize keeps each embeddings request comfortably under the API's
// input cap.
const DefaultBatchSize = 100

// Record pairs an input line with its vector and original position.
type Record struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// BatchResult is the JSON document embed-batch writes.
type BatchResult struct {
	Model       string   `json:"model"`
	Dimensions  int      `json:"dimensions"`
	TotalTexts  int      `json:"total_texts"`
	TotalTokens int      `json:"total_tokens"`
	Embeddings  []Record `json:"embeddings"`
}

// SingleResult is the JSON document embed --save writes.
type SingleResult struct {
	Text       string    `json:"text"`
	Model      string    `json:"model"`
	Embedding  []float64 `json:"embedding"`
	Dimensions int       `json:"dimensions"`
	Usage      struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// EmbedBatch embeds texts in fixed-size windows, strictly in order, one
// request outstanding at a time. The first failing window aborts the whole
// run. onBatch, when non-nil, is called with the 1-based window index before
// each request.
func EmbedBatch(ctx context.Context, ep provider.EmbeddingProvider, model string, texts []string, batchSize int, onBatch func(i, n int)) (*BatchResult, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts to embed")
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	numBatches := (len(texts) + batchSize - 1) / batchSize
	result := &BatchResult{
		Model:      model,
		TotalTexts: len(texts),
		Embeddings: make([]Record, 0, len(texts)),
	}

	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		if onBatch != nil {
			onBatch(i/batchSize+1, numBatches)
		}

		resp, err := ep.Embed(ctx, provider.EmbeddingRequest{Model: model, Inputs: texts[i:end]})
		if err != nil {
			return nil, fmt.Errorf("embed batch %d/%d: %w", i/batchSize+1, numBatches, err)
		}
		for j, vec := range resp.Vectors {
			result.Embeddings = append(result.Embeddings, Record{
				Text:      texts[i+j],
				Embedding: vec,
				Index:     i + j,
			})
		}
		result.TotalTokens += resp.Usage.TotalTokens
	}

	if len(result.Embeddings) > 0 {
		result.Dimensions = len(result.Embeddings[0].Embedding)
	}
	return result, nil
}
