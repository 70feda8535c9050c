package lookup

// Result is the assembled entry shape returned to clients. Stored and
// generated entries share it; a generated result carries exactly what the
// model produced.
type Result struct {
	Word           string              `json:"word"`
	Pronunciations []PronunciationItem `json:"pronunciations"`
	Definitions    []DefinitionItem    `json:"definitions"`
	WordForms      map[string]string   `json:"word_forms,omitempty"`
	Synonyms       []string            `json:"synonyms,omitempty"`
	FrequencyRank  *int                `json:"frequency_rank,omitempty"`
}

// PronunciationItem is one pronunciation in a lookup response.
type PronunciationItem struct {
	Accent   string  `json:"accent"`
	IPA      string  `json:"ipa"`
	AudioURL *string `json:"audio_url,omitempty"`
}

// DefinitionItem is one definition in a lookup response, sorted ascending
// by the stored order.
type DefinitionItem struct {
	POS          string        `json:"pos"`
	DefinitionEN string        `json:"definition_en"`
	DefinitionVI string        `json:"definition_vi"`
	Level        string        `json:"level"`
	Examples     []ExampleItem `json:"examples"`
}

// ExampleItem is an English/Vietnamese example pair.
type ExampleItem struct {
	EN string `json:"en"`
	VI string `json:"vi"`
}
