package domain

import "strings"

// NormalizeWord prepares a word for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of spaces into one (multi-word phrases)
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if !strings.Contains(word, "  ") {
		return word
	}

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
