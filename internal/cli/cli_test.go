package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/harisaicharan3/openaictl/internal/config"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type stubChat struct {
	fn func(req provider.ChatRequest) (provider.ChatResponse, error)
}

func (s *stubChat) Complete(ctx context.Context, req provider.ChatRequest) (provider.ChatResponse, error) {
	_ = ctx
	return s.fn(req)
}

type stubEmbedder struct {
	fn func(req provider.EmbeddingRequest) (provider.EmbeddingResponse, error)
}

func (s *stubEmbedder) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	_ = ctx
	return s.fn(req)
}

type stubSpeech struct {
	fn func(call int, req provider.SpeechRequest) (provider.SpeechResponse, error)
	n  int
}

func (s *stubSpeech) Synthesize(ctx context.Context, req provider.SpeechRequest) (provider.SpeechResponse, error) {
	_ = ctx
	call := s.n
	s.n++
	return s.fn(call, req)
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &app{
		cfg:    &config.Config{APIKey: "sk-test", ChatModel: "gpt-3.5-turbo"},
		log:    zerolog.Nop(),
		stdout: &buf,
	}, &buf
}

func TestChatCmd_PrintsResponseAndUsage(t *testing.T) {
	a, buf := newTestApp(t)
	a.chat = &stubChat{fn: func(req provider.ChatRequest) (provider.ChatResponse, error) {
		if req.Model != "gpt-3.5-turbo" {
			t.Fatalf("model=%q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != provider.RoleSystem {
			t.Fatalf("messages=%#v", req.Messages)
		}
		if req.Messages[1].Content != "hello there" {
			t.Fatalf("user message=%q", req.Messages[1].Content)
		}
		if req.MaxTokens == nil || *req.MaxTokens != 150 {
			t.Fatalf("max tokens=%v", req.MaxTokens)
		}
		return provider.ChatResponse{Text: "hi!", Usage: provider.Usage{TotalTokens: 42}}, nil
	}}

	root := a.rootCmd()
	root.SetArgs([]string{"chat", "hello", "there"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "hi!") || !strings.Contains(out, "Tokens used: 42") {
		t.Fatalf("out=%q", out)
	}
}

func TestChatFTCmd_RequiresModel(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.rootCmd()
	root.SetArgs([]string{"chat-ft"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
}

func TestSpeakCmd_InvalidVoice(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.rootCmd()
	root.SetArgs([]string{"speak", "hello", "out.mp3", "robotvoice"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid voice") {
		t.Fatalf("err=%v", err)
	}
}

func TestSpeakCmd_WritesAudio(t *testing.T) {
	a, buf := newTestApp(t)
	a.speech = &stubSpeech{fn: func(call int, req provider.SpeechRequest) (provider.SpeechResponse, error) {
		if req.Voice != "nova" || req.Model != "tts-1-hd" {
			t.Fatalf("req=%#v", req)
		}
		return provider.SpeechResponse{AudioBytes: []byte("AUDIO")}, nil
	}}

	out := filepath.Join(t.TempDir(), "clip")
	root := a.rootCmd()
	root.SetArgs([]string{"speak", "hello.", out, "nova", "tts-1-hd"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out + ".mp3")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "AUDIO" {
		t.Fatalf("data=%q", data)
	}
	out = buf.String()
	for _, hint := range []string{"macOS: afplay", "Linux: mpg123", "Windows: start"} {
		if !strings.Contains(out, hint) {
			t.Fatalf("missing playback hint %q in %q", hint, out)
		}
	}
}

func TestSpeakFileCmd_ChunksAndConcatenates(t *testing.T) {
	a, buf := newTestApp(t)
	a.speech = &stubSpeech{fn: func(call int, req provider.SpeechRequest) (provider.SpeechResponse, error) {
		return provider.SpeechResponse{AudioBytes: []byte{byte('A' + call)}}, nil
	}}

	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "speech.mp3")

	// The command chunks at the fixed 4096 limit, so three ~2000-char
	// sentences force more than one chunk.
	var b strings.Builder
	sentence := strings.Repeat("word ", 400) + "end. "
	b.WriteString(sentence)
	b.WriteString(sentence)
	b.WriteString(sentence)
	if err := os.WriteFile(in, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	root := a.rootCmd()
	root.SetArgs([]string{"speak-file", in, out})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// Three oversized-together sentences force at least two chunks; the
	// fragments must appear in call order.
	if len(data) < 2 {
		t.Fatalf("fragments=%d", len(data))
	}
	for i, bch := range data {
		if bch != byte('A'+i) {
			t.Fatalf("fragment order broken at %d: %q", i, data)
		}
	}
	if !strings.Contains(buf.String(), "Text split into") {
		t.Fatalf("out=%q", buf.String())
	}
}

func TestSpeakFileCmd_FailureLeavesNoFile(t *testing.T) {
	a, _ := newTestApp(t)
	boom := &provider.Error{Provider: "openai", Status: 429, Message: "rate limited"}
	a.speech = &stubSpeech{fn: func(call int, req provider.SpeechRequest) (provider.SpeechResponse, error) {
		if call == 1 {
			return provider.SpeechResponse{}, boom
		}
		return provider.SpeechResponse{AudioBytes: []byte("x")}, nil
	}}

	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	var b strings.Builder
	sentence := strings.Repeat("word ", 400) + "end. "
	b.WriteString(sentence)
	b.WriteString(sentence)
	b.WriteString(sentence)
	if err := os.WriteFile(in, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "speech.mp3")

	root := a.rootCmd()
	root.SetArgs([]string{"speak-file", in, out})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *provider.Error
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v", err)
	}
	if Classify(err) != TransientServiceFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output file must not exist after failure")
	}
}

func TestSpeakFileCmd_EmptyInput(t *testing.T) {
	a, _ := newTestApp(t)
	in := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(in, []byte("   \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := a.rootCmd()
	root.SetArgs([]string{"speak-file", in})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
}

func TestSpeakFileCmd_MissingInputIsConfiguration(t *testing.T) {
	a, _ := newTestApp(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")
	root := a.rootCmd()
	root.SetArgs([]string{"speak-file", missing})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	// A missing input file is an invocation problem; local I/O is reserved
	// for write-side failures.
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
	want := "Input file '" + missing + "' not found!"
	if err.Error() != want {
		t.Fatalf("err=%q", err)
	}
}

func TestEmbedBatchCmd_MissingInputIsConfiguration(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.rootCmd()
	root.SetArgs([]string{"embed-batch", filepath.Join(t.TempDir(), "nope.txt")})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
	if !strings.Contains(err.Error(), "not found!") {
		t.Fatalf("err=%q", err)
	}
}

func TestEmbedCmd_SaveWritesJSON(t *testing.T) {
	a, buf := newTestApp(t)
	a.embedder = &stubEmbedder{fn: func(req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
		return provider.EmbeddingResponse{
			Vectors: [][]float64{{0.25, -0.5}},
			Usage:   provider.Usage{PromptTokens: 3, TotalTokens: 3},
		}, nil
	}}

	save := filepath.Join(t.TempDir(), "vec.json")
	root := a.rootCmd()
	root.SetArgs([]string{"embed", "--save", save, "hello"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Dimensions: 2") {
		t.Fatalf("out=%q", buf.String())
	}
	data, err := os.ReadFile(save)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"dimensions": 2`) {
		t.Fatalf("json=%q", data)
	}
}

func TestEmbedCmd_CompareSimilarity(t *testing.T) {
	a, buf := newTestApp(t)
	a.embedder = &stubEmbedder{fn: func(req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
		return provider.EmbeddingResponse{
			Vectors: [][]float64{{1, 0}},
			Usage:   provider.Usage{TotalTokens: 2},
		}, nil
	}}

	root := a.rootCmd()
	root.SetArgs([]string{"embed", "--compare", "cat", "kitten"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Cosine Similarity: 1.000000") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Tokens used: 4") {
		t.Fatalf("out=%q", out)
	}
}

func TestEmbedCmd_InvalidModel(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.rootCmd()
	root.SetArgs([]string{"embed", "hello", "text-embedding-9000"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
}

func TestEmbedBatchCmd_WritesDocument(t *testing.T) {
	a, _ := newTestApp(t)
	a.embedder = &stubEmbedder{fn: func(req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
		resp := provider.EmbeddingResponse{Usage: provider.Usage{TotalTokens: len(req.Inputs)}}
		for range req.Inputs {
			resp.Vectors = append(resp.Vectors, []float64{1, 2, 3})
		}
		return resp, nil
	}}

	dir := t.TempDir()
	in := filepath.Join(dir, "texts.txt")
	if err := os.WriteFile(in, []byte("first\n\nsecond\nthird\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "embeddings.json")

	root := a.rootCmd()
	root.SetArgs([]string{"embed-batch", in, out})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"total_texts": 3`) || !strings.Contains(s, `"dimensions": 3`) {
		t.Fatalf("json=%q", s)
	}
}
