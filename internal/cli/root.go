// Package cli is the command tree: one subcommand per tool, a single
// classification point for failures, and a single exit path.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/config"
	"github.com/harisaicharan3/openaictl/internal/openai"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

// app carries the injected capabilities. Commands only see the narrow
// interfaces, so tests swap in fakes without touching the network.
type app struct {
	cfg *config.Config
	log zerolog.Logger

	chat     provider.ChatProvider
	embedder provider.EmbeddingProvider
	speech   provider.SpeechProvider
	files    provider.FileProvider
	finetune provider.FineTuneProvider

	stdout io.Writer
}

func newApp(cfg *config.Config, stdout io.Writer) *app {
	client := openai.NewClient(openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	return &app{
		cfg:      cfg,
		log:      newLogger(cfg),
		chat:     client,
		embedder: client,
		speech:   client,
		files:    client,
		finetune: client,
		stdout:   stdout,
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// runContext applies the configured per-run deadline, when any.
func (a *app) runContext() (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(context.Background(), a.cfg.Timeout)
	}
	return context.WithCancel(context.Background())
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "openaictl",
		Short:         "Command-line tools for the OpenAI API",
		Long:          "openaictl wraps single OpenAI API calls: chat completions, embeddings,\ntext-to-speech, and fine-tuning job management.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(a.chatCmd())
	root.AddCommand(a.chatFTCmd())
	root.AddCommand(a.speakCmd())
	root.AddCommand(a.speakFileCmd())
	root.AddCommand(a.embedCmd())
	root.AddCommand(a.embedBatchCmd())
	root.AddCommand(a.finetuneCmd())
	return root
}

// Execute is the single entry and exit point. Configuration is loaded before
// anything else; any run-ending error is classified and reported exactly
// once, and the process exit status is 1 for every failure category.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		Report(os.Stdout, &configError{err: err})
		return 1
	}

	a := newApp(cfg, os.Stdout)
	if err := a.rootCmd().Execute(); err != nil {
		Report(a.stdout, err)
		a.log.Debug().Str("kind", Classify(err).String()).Err(err).Msg("run failed")
		return 1
	}
	return 0
}
