package openai

import "strings"

// Validation tables for the fixed enumerations the CLI accepts. These mirror
// the API's published options and are deliberately closed sets: an unknown
// name is a user error, not something to pass through.

var SpeechVoices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

var SpeechModels = []string{"tts-1", "tts-1-hd"}

var EmbeddingModels = []string{
	"text-embedding-3-small",
	"text-embedding-3-large",
	"text-embedding-ada-002",
}

func ValidSpeechVoice(v string) bool    { return contains(SpeechVoices, v) }
func ValidSpeechModel(m string) bool    { return contains(SpeechModels, m) }
func ValidEmbeddingModel(m string) bool { return contains(EmbeddingModels, m) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func joinOptions(set []string) string { return strings.Join(set, ", ") }

// Options strings for remediation text.
func SpeechVoiceOptions() string    { return joinOptions(SpeechVoices) }
func SpeechModelOptions() string    { return joinOptions(SpeechModels) }
func EmbeddingModelOptions() string { return joinOptions(EmbeddingModels) }
