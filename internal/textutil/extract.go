// Package textutil isolates the parsing of structured values out of
// free-text language-model responses. Every stage that talks to the
// model depends on this, so it lives in one small testable place.
package textutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractStringArray finds the first well-formed JSON array of strings
// anywhere in a free-text response, tolerating surrounding prose and
// markdown code fences. It returns an error when no usable array exists;
// callers are expected to substitute their own fallback.
func ExtractStringArray(text string) ([]string, error) {
	cleaned := stripCodeFences(text)

	start := strings.Index(cleaned, "[")
	if start < 0 {
		return nil, fmt.Errorf("no array found in response")
	}

	// Greedy first: everything between the first '[' and the last ']'.
	// The model sometimes nests brackets inside queries, so fall back to
	// the shortest candidate when the greedy slice does not parse.
	if end := strings.LastIndex(cleaned, "]"); end > start {
		if values, err := decodeStringArray(cleaned[start : end+1]); err == nil {
			return values, nil
		}
	}
	if end := strings.Index(cleaned[start:], "]"); end > 0 {
		if values, err := decodeStringArray(cleaned[start : start+end+1]); err == nil {
			return values, nil
		}
	}

	return nil, fmt.Errorf("response contains no parseable string array")
}

func decodeStringArray(candidate string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(candidate), &values); err != nil {
		return nil, err
	}

	out := values[:0]
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("array is empty")
	}
	return out, nil
}

func stripCodeFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
