package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

// Synthesizer is the one capability the assembler needs: text in, audio
// fragment out. Commands bind voice and model up front so the pipeline only
// sees chunks.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// SynthesizerFunc adapts a plain function to the Synthesizer interface.
type SynthesizerFunc func(ctx context.Context, text string) ([]byte, error)

func (f SynthesizerFunc) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f(ctx, text)
}

// Bind fixes voice and model on a SpeechProvider, yielding a Synthesizer.
func Bind(p provider.SpeechProvider, model, voice string) Synthesizer {
	return SynthesizerFunc(func(ctx context.Context, text string) ([]byte, error) {
		resp, err := p.Synthesize(ctx, provider.SpeechRequest{Model: model, Voice: voice, Text: text})
		if err != nil {
			return nil, err
		}
		return resp.AudioBytes, nil
	})
}

// Assemble synthesizes each chunk strictly in order, one outstanding call at
// a time, and returns the byte-for-byte concatenation of the fragments. The
// first failure aborts the run: remaining chunks are not attempted and no
// partial audio is returned. onChunk, when non-nil, is called with the
// 1-based index before each request.
func Assemble(ctx context.Context, synth Synthesizer, chunks []string, onChunk func(i, n int)) ([]byte, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks to synthesize")
	}
	var audio []byte
	for i, chunk := range chunks {
		if onChunk != nil {
			onChunk(i+1, len(chunks))
		}
		fragment, err := synth.Synthesize(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		audio = append(audio, fragment...)
	}
	return audio, nil
}

// NormalizeOutputPath appends ".mp3" unless the path already carries one of
// the container extensions the speech endpoint can produce.
func NormalizeOutputPath(p string) string {
	for _, ext := range []string{".mp3", ".opus", ".aac", ".flac"} {
		if strings.HasSuffix(p, ext) {
			return p
		}
	}
	return p + ".mp3"
}
