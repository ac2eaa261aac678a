package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

const defaultChatMessage = "Say hello and introduce yourself briefly."

func (a *app) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message...]",
		Short: "Send one chat completion and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if message == "" {
				message = defaultChatMessage
			}
			return a.runChat(a.cfg.ChatModel, message)
		},
	}
}

func (a *app) chatFTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat-ft <fine_tuned_model> [message...]",
		Short: "Send one chat completion against a fine-tuned model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageErrorf("usage: openaictl chat-ft <fine_tuned_model> [message...]\n\nExample:\n  openaictl chat-ft ft:gpt-3.5-turbo-0125:my-org:custom-model:9ABcDEf")
			}
			message := strings.Join(args[1:], " ")
			if message == "" {
				message = "What are your business hours?"
			}
			return a.runChat(args[0], message)
		},
	}
}

func (a *app) runChat(model, message string) error {
	fmt.Fprintf(a.stdout, "Using model: %s\n", model)
	fmt.Fprintf(a.stdout, "Sending message: %s\n\n", message)

	ctx, cancel := a.runContext()
	defer cancel()

	maxTokens := 150
	temperature := float32(0.7)
	resp, err := a.chat.Complete(ctx, provider.ChatRequest{
		Model: model,
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: "You are a helpful assistant."},
			{Role: provider.RoleUser, Content: message},
		},
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Response:")
	fmt.Fprintln(a.stdout, strings.Repeat("-", 50))
	fmt.Fprintln(a.stdout, resp.Text)
	fmt.Fprintln(a.stdout, strings.Repeat("-", 50))
	fmt.Fprintf(a.stdout, "\nTokens used: %d\n", resp.Usage.TotalTokens)
	return nil
}
