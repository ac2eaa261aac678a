package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/speech"
)

const speakFileUsage = `usage: openaictl speak-file <input_file> [output_file] [voice] [model]

Converts a whole text file to one audio file. Long texts are split into
chunks at sentence boundaries (API limit: 4096 chars/request) and the audio
is concatenated in order.

Examples:
  openaictl speak-file article.txt
  openaictl speak-file article.txt output.mp3 nova tts-1-hd`

func (a *app) speakFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak-file <input_file> [output_file] [voice] [model]",
		Short: "Convert a text file to one speech audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageErrorf("%s", speakFileUsage)
			}
			sa, err := parseSpeakArgs(args, "speech_output.mp3")
			if err != nil {
				return err
			}
			return a.runSpeakFile(args[0], sa)
		},
	}
}

func (a *app) runSpeakFile(inputPath string, sa speakArgs) error {
	fmt.Fprintf(a.stdout, "Reading file: %s\n", inputPath)
	raw, err := readInputFile(inputPath)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return usageErrorf("input file '%s' is empty", inputPath)
	}
	fmt.Fprintf(a.stdout, "Text length: %d characters\n", len(text))

	chunks := speech.Split(text, speech.MaxChunkLen)
	if len(chunks) > 1 {
		fmt.Fprintf(a.stdout, "Text split into %d chunks (API limit: %d chars/request)\n", len(chunks), speech.MaxChunkLen)
	}
	a.log.Debug().Int("chunks", len(chunks)).Str("voice", sa.voice).Str("model", sa.model).Msg("starting synthesis")

	fmt.Fprintf(a.stdout, "Voice: %s\n", sa.voice)
	fmt.Fprintf(a.stdout, "Model: %s\n", sa.model)
	fmt.Fprintf(a.stdout, "Output: %s\n", sa.output)
	fmt.Fprintln(a.stdout, "\nGenerating speech...")

	ctx, cancel := a.runContext()
	defer cancel()

	synth := speech.Bind(a.speech, sa.model, sa.voice)
	audio, err := speech.Assemble(ctx, synth, chunks, func(i, n int) {
		if n > 1 {
			fmt.Fprintf(a.stdout, "  Processing chunk %d/%d...\n", i, n)
		}
	})
	if err != nil {
		return err
	}

	// The file is created only after every fragment arrived; a failed run
	// leaves nothing behind.
	if err := os.WriteFile(sa.output, audio, 0o644); err != nil {
		return err
	}
	a.printAudioSaved(sa.output, int64(len(audio)))
	return nil
}
