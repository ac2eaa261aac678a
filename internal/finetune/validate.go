// Package finetune prepares and tracks fine-tuning jobs: it validates the
// JSONL training file locally before anything is uploaded, then drives the
// upload -> processed -> create-job sequence.
package finetune

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema is the chat-format training record the fine-tuning endpoint
// accepts: a messages array of role/content pairs.
const recordSchema = `{
  "type": "object",
  "required": ["messages"],
  "properties": {
    "messages": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["role", "content"],
        "properties": {
          "role": {"type": "string", "enum": ["system", "user", "assistant"]},
          "content": {"type": "string"}
        }
      }
    }
  }
}`

func compileRecordSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("record.json", strings.NewReader(recordSchema)); err != nil {
		return nil, fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile("record.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// ValidateTrainingData checks every line of a JSONL training file against the
// chat-record schema and returns the record count. Blank lines are skipped;
// the first invalid line fails the whole file with its 1-based line number.
func ValidateTrainingData(contents []byte) (int, error) {
	s, err := compileRecordSchema()
	if err != nil {
		return 0, err
	}

	records := 0
	scanner := bufio.NewScanner(bytes.NewReader(contents))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return 0, fmt.Errorf("line %d: invalid JSON: %w", line, err)
		}
		if err := s.Validate(doc); err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read training data: %w", err)
	}
	if records == 0 {
		return 0, fmt.Errorf("training file has no records")
	}
	return records, nil
}
