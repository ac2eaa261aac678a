package provider

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatProvider performs a single blocking chat completion.
type ChatProvider interface {
	Complete(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type ChatRequest struct {
	Model    string
	Messages []Message

	MaxTokens   *int
	Temperature *float32
}

type ChatResponse struct {
	Text         string
	FinishReason string
	Usage        Usage

	RawResponse []byte
}
