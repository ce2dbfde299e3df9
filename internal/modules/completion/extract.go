package completion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSON means no brace-delimited candidate could be located at all.
	ErrNoJSON = errors.New("no JSON object found in AI response")
	// ErrParse means a candidate was located but is not valid JSON.
	ErrParse = errors.New("invalid JSON in AI response")
	// ErrMissingKey means the JSON parsed but a required top-level key is absent.
	ErrMissingKey = errors.New("AI response missing required key")
)

// extractStrategy produces a candidate JSON string from raw completion text.
// Strategies are pure; the same input always yields the same candidate.
type extractStrategy func(text string) (string, bool)

// Tried in order; the first strategy that yields a candidate wins. The
// candidate is then handed to the parser exactly once: a parse failure is
// total extraction failure, not a cue to try the next strategy.
var extractStrategies = []extractStrategy{
	extractBraceSpan,
	extractStripped,
}

// ExtractJSON locates a JSON object candidate inside raw completion text,
// which may wrap it in prose, markdown code fences, or both.
func ExtractJSON(text string) (string, bool) {
	for _, strategy := range extractStrategies {
		candidate, ok := strategy(text)
		if !ok {
			continue
		}
		// A candidate that still does not open with a brace gets one last
		// chance: slice the raw text between its outermost braces.
		if !strings.HasPrefix(candidate, "{") {
			if sliced, sok := extractBraceSpan(text); sok {
				candidate = sliced
			} else {
				continue
			}
		}
		return candidate, true
	}
	return "", false
}

// extractBraceSpan slices from the first '{' to the last '}' of the text.
// Greedy on purpose: nested objects inside the result stay intact.
func extractBraceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// extractStripped removes markdown code-fence markers and any prose before
// the first '{' or after the last '}'.
func extractStripped(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if idx := strings.Index(cleaned, "{"); idx > 0 {
		cleaned = cleaned[idx:]
	}
	// Everything after the last '}' is prose; with no '}' at all there is
	// nothing left to keep.
	idx := strings.LastIndex(cleaned, "}")
	if idx < 0 {
		return "", false
	}
	cleaned = cleaned[:idx+1]
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

func decodeObject(candidate string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return obj, nil
}

func unmarshalJSON(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}
