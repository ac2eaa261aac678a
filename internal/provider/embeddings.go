package provider

import "context"

// EmbeddingProvider turns a batch of inputs into vectors, one per input, in
// input order.
type EmbeddingProvider interface {
	Embed(ctx context.Context, req EmbeddingRequest) (EmbeddingResponse, error)
}

type EmbeddingRequest struct {
	Model  string
	Inputs []string
}

type EmbeddingResponse struct {
	Vectors [][]float64
	Usage   Usage

	RawResponse []byte
}
