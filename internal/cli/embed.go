package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/embeddings"
	"github.com/harisaicharan3/openaictl/internal/openai"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

const embedUsage = `usage: openaictl embed <text> [model]
       openaictl embed --compare <text1> <text2> [model]

Examples:
  openaictl embed "The quick brown fox"
  openaictl embed "Machine learning" text-embedding-3-large
  openaictl embed --compare "cat" "kitten"
  openaictl embed --save out.json "The quick brown fox"

Available models:
  text-embedding-3-small (default, 1536 dimensions)
  text-embedding-3-large (3072 dimensions)
  text-embedding-ada-002 (legacy, 1536 dimensions)`

func (a *app) embedCmd() *cobra.Command {
	var compare bool
	var saveFile string

	cmd := &cobra.Command{
		Use:   "embed <text> [model]",
		Short: "Generate an embedding vector for a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compare {
				if len(args) < 2 {
					return usageErrorf("--compare requires two text arguments\n\n%s", embedUsage)
				}
				model := "text-embedding-3-small"
				if len(args) > 2 {
					model = args[2]
				}
				if !openai.ValidEmbeddingModel(model) {
					return usageErrorf("Invalid model '%s'\nValid models: %s", model, openai.EmbeddingModelOptions())
				}
				return a.runEmbedCompare(args[0], args[1], model)
			}

			if len(args) < 1 {
				return usageErrorf("%s", embedUsage)
			}
			model := "text-embedding-3-small"
			if len(args) > 1 {
				model = args[1]
			}
			if !openai.ValidEmbeddingModel(model) {
				return usageErrorf("Invalid model '%s'\nValid models: %s", model, openai.EmbeddingModelOptions())
			}
			return a.runEmbed(args[0], model, saveFile)
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "compare similarity between two texts")
	cmd.Flags().StringVar(&saveFile, "save", "", "save the embedding to a JSON file")
	return cmd
}

func (a *app) embedOne(model, text string) ([]float64, provider.Usage, error) {
	ctx, cancel := a.runContext()
	defer cancel()

	resp, err := a.embedder.Embed(ctx, provider.EmbeddingRequest{Model: model, Inputs: []string{text}})
	if err != nil {
		return nil, provider.Usage{}, err
	}
	if len(resp.Vectors) != 1 {
		return nil, provider.Usage{}, fmt.Errorf("expected 1 embedding, got %d", len(resp.Vectors))
	}
	return resp.Vectors[0], resp.Usage, nil
}

func (a *app) runEmbed(text, model, saveFile string) error {
	fmt.Fprintf(a.stdout, "Text: %s\n", text)
	fmt.Fprintf(a.stdout, "Model: %s\n", model)
	fmt.Fprintln(a.stdout, "\nGenerating embedding...")

	vector, usage, err := a.embedOne(model, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(a.stdout, "Embedding generated")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 70))
	fmt.Fprintf(a.stdout, "Dimensions: %d\n", len(vector))
	fmt.Fprintf(a.stdout, "Tokens used: %d\n", usage.TotalTokens)

	fmt.Fprintln(a.stdout, "\nFirst 10 values (preview):")
	preview := vector
	if len(preview) > 10 {
		preview = preview[:10]
	}
	for _, v := range preview {
		fmt.Fprintf(a.stdout, "  %.8f\n", v)
	}

	stats := embeddings.VectorStats(vector)
	fmt.Fprintln(a.stdout, "\nStatistics:")
	fmt.Fprintf(a.stdout, "  Mean: %.8f\n", stats.Mean)
	fmt.Fprintf(a.stdout, "  Std Dev: %.8f\n", stats.StdDev)
	fmt.Fprintf(a.stdout, "  Min: %.8f\n", stats.Min)
	fmt.Fprintf(a.stdout, "  Max: %.8f\n", stats.Max)
	fmt.Fprintf(a.stdout, "  L2 Norm: %.8f\n", stats.L2Norm)

	if saveFile != "" {
		doc := embeddings.SingleResult{
			Text:       text,
			Model:      model,
			Embedding:  vector,
			Dimensions: len(vector),
		}
		doc.Usage.PromptTokens = usage.PromptTokens
		doc.Usage.TotalTokens = usage.TotalTokens
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(saveFile, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "\nEmbedding saved to: %s\n", saveFile)
	}
	return nil
}

func (a *app) runEmbedCompare(text1, text2, model string) error {
	fmt.Fprintf(a.stdout, "Model: %s\n", model)
	fmt.Fprintf(a.stdout, "Text 1: %s\n", text1)
	fmt.Fprintf(a.stdout, "Text 2: %s\n", text2)
	fmt.Fprintln(a.stdout, "\nGenerating embeddings...")

	vec1, usage1, err := a.embedOne(model, text1)
	if err != nil {
		return err
	}
	vec2, usage2, err := a.embedOne(model, text2)
	if err != nil {
		return err
	}

	similarity, err := embeddings.CosineSimilarity(vec1, vec2)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(a.stdout, "Results:")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 70))
	fmt.Fprintf(a.stdout, "Embedding 1 dimensions: %d\n", len(vec1))
	fmt.Fprintf(a.stdout, "Embedding 2 dimensions: %d\n", len(vec2))
	fmt.Fprintf(a.stdout, "\nCosine Similarity: %.6f\n", similarity)
	fmt.Fprintf(a.stdout, "Similarity Percentage: %.2f%%\n", similarity*100)
	fmt.Fprintf(a.stdout, "\nInterpretation:\n  %s\n", embeddings.Interpret(similarity))
	fmt.Fprintf(a.stdout, "\nTokens used: %d\n", usage1.TotalTokens+usage2.TotalTokens)
	return nil
}
