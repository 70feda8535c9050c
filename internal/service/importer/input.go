package importer

// Input is one externally sourced entry to fold into the store.
type Input struct {
	Word           string              `json:"word"`
	WordNormalized string              `json:"word_normalized,omitempty"`
	Language       string              `json:"language,omitempty"`
	FrequencyRank  *int                `json:"frequency_rank,omitempty"`
	Pronunciations []PronunciationInput `json:"pronunciations,omitempty"`
	Definitions    []DefinitionInput    `json:"definitions,omitempty"`
	Synonyms       []string             `json:"synonyms,omitempty"`
	WordForms      map[string]string    `json:"word_forms,omitempty"`
}

// PronunciationInput is one (accent, ipa, audio) triple.
type PronunciationInput struct {
	Accent   string  `json:"accent"`
	IPA      string  `json:"ipa"`
	AudioURL *string `json:"audio_url,omitempty"`
}

// DefinitionInput is one definition with its examples.
type DefinitionInput struct {
	POS          string         `json:"pos"`
	DefinitionEN string         `json:"definition_en"`
	DefinitionVI string         `json:"definition_vi,omitempty"`
	Level        string         `json:"level,omitempty"`
	Examples     []ExampleInput `json:"examples,omitempty"`
}

// ExampleInput is an English/Vietnamese sentence pair with optional
// provenance.
type ExampleInput struct {
	EN     string  `json:"en"`
	VI     string  `json:"vi,omitempty"`
	Source *string `json:"source,omitempty"`
}

// Result reports the outcome of one import.
type Result struct {
	Success bool   `json:"success"`
	Word    string `json:"word"`
}
