package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/openai"
	"github.com/harisaicharan3/openaictl/internal/provider"
	"github.com/harisaicharan3/openaictl/internal/speech"
)

const speakUsage = `usage: openaictl speak <text> [output_file] [voice] [model]

Examples:
  openaictl speak "Hello, world!"
  openaictl speak "Hello, world!" output.mp3 nova tts-1-hd

Available voices:
  alloy (neutral), echo (male), fable (neutral),
  onyx (male), nova (female), shimmer (female)

Available models:
  tts-1 (faster, standard quality)
  tts-1-hd (slower, higher quality)`

type speakArgs struct {
	output string
	voice  string
	model  string
}

func parseSpeakArgs(args []string, defaultOutput string) (speakArgs, error) {
	out := speakArgs{output: defaultOutput, voice: "alloy", model: "tts-1"}
	if len(args) > 1 {
		out.output = args[1]
	}
	if len(args) > 2 {
		out.voice = args[2]
	}
	if len(args) > 3 {
		out.model = args[3]
	}
	if !openai.ValidSpeechVoice(out.voice) {
		return out, usageErrorf("Invalid voice '%s'\nValid voices: %s", out.voice, openai.SpeechVoiceOptions())
	}
	if !openai.ValidSpeechModel(out.model) {
		return out, usageErrorf("Invalid model '%s'\nValid models: %s", out.model, openai.SpeechModelOptions())
	}
	out.output = speech.NormalizeOutputPath(out.output)
	return out, nil
}

func (a *app) speakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text> [output_file] [voice] [model]",
		Short: "Convert a short text to speech",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageErrorf("%s", speakUsage)
			}
			text := args[0]
			sa, err := parseSpeakArgs(args, "speech.mp3")
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Text: %s\n", text)
			fmt.Fprintf(a.stdout, "Voice: %s\n", sa.voice)
			fmt.Fprintf(a.stdout, "Model: %s\n", sa.model)
			fmt.Fprintf(a.stdout, "Output: %s\n", sa.output)
			fmt.Fprintln(a.stdout, "\nGenerating speech...")

			ctx, cancel := a.runContext()
			defer cancel()

			resp, err := a.speech.Synthesize(ctx, provider.SpeechRequest{
				Model: sa.model,
				Voice: sa.voice,
				Text:  text,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(sa.output, resp.AudioBytes, 0o644); err != nil {
				return err
			}
			a.printAudioSaved(sa.output, int64(len(resp.AudioBytes)))
			return nil
		},
	}
}

func (a *app) printAudioSaved(path string, size int64) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout, "Success!")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintf(a.stdout, "Audio file saved: %s\n", abs)
	kb := float64(size) / 1024
	if mb := kb / 1024; mb >= 1 {
		fmt.Fprintf(a.stdout, "File size: %.2f MB\n", mb)
	} else {
		fmt.Fprintf(a.stdout, "File size: %.2f KB\n", kb)
	}
	fmt.Fprintln(a.stdout, "\nYou can play it with:")
	fmt.Fprintf(a.stdout, "  macOS: afplay %s\n", path)
	fmt.Fprintf(a.stdout, "  Linux: mpg123 %s\n", path)
	fmt.Fprintf(a.stdout, "  Windows: start %s\n", path)
}
