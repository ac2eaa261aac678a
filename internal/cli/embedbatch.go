package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/embeddings"
	"github.com/harisaicharan3/openaictl/internal/openai"
)

const embedBatchUsage = `usage: openaictl embed-batch <input_file> [output_file] [model]

Embeds every non-blank line of the input file and writes all vectors to one
JSON document.

Examples:
  openaictl embed-batch texts.txt
  openaictl embed-batch texts.txt embeddings.json text-embedding-3-large`

func (a *app) embedBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed-batch <input_file> [output_file] [model]",
		Short: "Generate embeddings for every line of a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageErrorf("%s", embedBatchUsage)
			}
			inputFile := args[0]
			outputFile := "embeddings.json"
			model := "text-embedding-3-small"
			if len(args) > 1 {
				outputFile = args[1]
			}
			if len(args) > 2 {
				model = args[2]
			}
			if !openai.ValidEmbeddingModel(model) {
				return usageErrorf("Invalid model '%s'\nValid models: %s", model, openai.EmbeddingModelOptions())
			}
			return a.runEmbedBatch(inputFile, outputFile, model)
		},
	}
}

func (a *app) runEmbedBatch(inputFile, outputFile, model string) error {
	fmt.Fprintf(a.stdout, "Reading file: %s\n", inputFile)
	raw, err := readInputFile(inputFile)
	if err != nil {
		return err
	}

	var texts []string
	for _, line := range strings.Split(string(raw), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return usageErrorf("input file '%s' is empty", inputFile)
	}

	fmt.Fprintf(a.stdout, "Found %d texts to process\n", len(texts))
	fmt.Fprintf(a.stdout, "Model: %s\n", model)
	fmt.Fprintln(a.stdout, "\nGenerating embeddings...")

	ctx, cancel := a.runContext()
	defer cancel()

	result, err := embeddings.EmbedBatch(ctx, a.embedder, model, texts, embeddings.DefaultBatchSize, func(i, n int) {
		fmt.Fprintf(a.stdout, "  Processing batch %d/%d...\n", i, n)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "\nSaving embeddings to: %s\n", outputFile)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(a.stdout, "Success!")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 70))
	fmt.Fprintf(a.stdout, "Processed: %d texts\n", result.TotalTexts)
	fmt.Fprintf(a.stdout, "Dimensions: %d\n", result.Dimensions)
	fmt.Fprintf(a.stdout, "Tokens used: %d\n", result.TotalTokens)
	fmt.Fprintf(a.stdout, "Output file: %s\n", outputFile)
	fmt.Fprintf(a.stdout, "File size: %.2f MB\n", float64(len(data))/(1024*1024))
	return nil
}
