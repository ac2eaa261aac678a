package provider

import "context"

// SpeechProvider converts one piece of text into one opaque audio fragment.
type SpeechProvider interface {
	Synthesize(ctx context.Context, req SpeechRequest) (SpeechResponse, error)
}

type SpeechRequest struct {
	Model string
	Voice string
	Text  string
}

type SpeechResponse struct {
	AudioBytes []byte
	MediaType  string
}
