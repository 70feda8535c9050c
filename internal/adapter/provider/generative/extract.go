package generative

import (
	"fmt"
	"strings"

	"github.com/tdhoang/vocadict-backend/internal/provider"
)

// extractJSON finds the first complete JSON object in a string. Completions
// routinely carry leading or trailing commentary around the object; the
// substring between the first '{' and the last '}' is taken greedily.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in completion")
	}
	return s[start : end+1], nil
}

// validateEntry checks the parsed object against the expected entry schema.
// The model is free-text and occasionally produces a partially shaped
// object; those are rejected here instead of leaking to callers.
func validateEntry(e *provider.GeneratedEntry) error {
	if e.Word == "" {
		return fmt.Errorf("missing word")
	}
	if len(e.Definitions) == 0 {
		return fmt.Errorf("no definitions")
	}
	for i, d := range e.Definitions {
		if d.DefinitionEN == "" {
			return fmt.Errorf("definition %d has no English text", i)
		}
	}
	for i, p := range e.Pronunciations {
		if p.IPA == "" {
			return fmt.Errorf("pronunciation %d has no IPA", i)
		}
	}
	return nil
}
