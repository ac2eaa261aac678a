package embeddings

import (
	"fmt"
	"math"
)

func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("vectors must be non-empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(a), len(b))
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("zero vector")
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// Interpret maps a cosine similarity onto the coarse verdict the CLI prints.
func Interpret(similarity float64) string {
	switch {
	case similarity > 0.9:
		return "Very similar - Nearly identical meaning"
	case similarity > 0.7:
		return "Similar - Related concepts"
	case similarity > 0.5:
		return "Somewhat similar - Some relation"
	case similarity > 0.3:
		return "Weakly similar - Distant relation"
	default:
		return "Different - Unrelated concepts"
	}
}
