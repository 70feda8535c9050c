// Package provider defines the result types shared between external
// providers and the services that consume them.
package provider

import "github.com/tdhoang/vocadict-backend/internal/domain"

// GeneratedEntry is the schema the completion model is prompted to produce
// for an unknown word. The JSON tags match the prompt's example schema and
// the lookup response shape, so a parsed completion is returned to clients
// as-is.
type GeneratedEntry struct {
	Word           string                   `json:"word"`
	Pronunciations []GeneratedPronunciation `json:"pronunciations"`
	Definitions    []GeneratedDefinition    `json:"definitions"`
	WordForms      map[string]string        `json:"word_forms,omitempty"`
	Synonyms       []string                 `json:"synonyms,omitempty"`
}

// GeneratedPronunciation is one pronunciation in a generated entry.
type GeneratedPronunciation struct {
	Accent   string  `json:"accent"`
	IPA      string  `json:"ipa"`
	AudioURL *string `json:"audio_url,omitempty"`
}

// GeneratedDefinition is one definition in a generated entry.
type GeneratedDefinition struct {
	POS          string             `json:"pos"`
	DefinitionEN string             `json:"definition_en"`
	DefinitionVI string             `json:"definition_vi"`
	Level        string             `json:"level,omitempty"`
	Examples     []GeneratedExample `json:"examples"`
}

// GeneratedExample is an English/Vietnamese example sentence pair.
type GeneratedExample struct {
	EN string `json:"en"`
	VI string `json:"vi"`
}

// AudioResult holds the audio URLs found for a word, bucketed by accent.
// Zero value means nothing was found.
type AudioResult struct {
	US string
	UK string
}

// Resolve returns the URL for the requested accent, falling back to the
// other bucket when the requested one is empty. Many words share a single
// recording, or the upstream API omits one accent entirely.
func (r AudioResult) Resolve(accent string) string {
	if accent == domain.AccentUK {
		if r.UK != "" {
			return r.UK
		}
		return r.US
	}
	if r.US != "" {
		return r.US
	}
	return r.UK
}

// Empty reports whether no audio was found for either accent.
func (r AudioResult) Empty() bool {
	return r.US == "" && r.UK == ""
}
