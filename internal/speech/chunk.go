// Package speech holds the long-text synthesis pipeline: split a document
// into sub-limit chunks at sentence boundaries, synthesize each chunk in
// order, and concatenate the audio fragments into one output.
package speech

import "strings"

// MaxChunkLen is the API's per-request character limit for speech input.
const MaxChunkLen = 4096

// Split partitions text into ordered chunks of at most maxLen characters,
// breaking only at sentence boundaries. Sentences are delimited by the
// literal ". " — nothing smarter; "! ", "? ", abbreviations and quoted
// periods are intentionally not handled, for compatibility with the output
// this tool has always produced. A sentence that alone exceeds maxLen is
// emitted as its own oversized chunk rather than split mid-sentence.
//
// Newlines are collapsed to spaces before splitting. Callers must reject
// empty input themselves; Split on whitespace-only input returns nil.
func Split(text string, maxLen int) []string {
	sentences := strings.Split(strings.ReplaceAll(text, "\n", " "), ". ")

	var chunks []string
	current := ""
	for _, sentence := range sentences {
		// The delimiter split strips the period from every sentence but
		// the last; put it back.
		sentence = strings.TrimSpace(sentence)
		if sentence != "" && !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}

		if len(current)+len(sentence)+1 <= maxLen {
			current += sentence + " "
		} else {
			if trimmed := strings.TrimSpace(current); trimmed != "" {
				chunks = append(chunks, trimmed)
			}
			current = sentence + " "
		}
	}
	if trimmed := strings.TrimSpace(current); trimmed != "" {
		chunks = append(chunks, trimmed)
	}
	return chunks
}
