package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the root record for one word. It owns pronunciations,
// definitions (with their examples), word forms, and synonyms.
// Deleting an entry cascades to all children.
type Entry struct {
	ID             uuid.UUID
	Word           string // case-preserving natural key
	WordNormalized string // lowercase key used for lookups and uniqueness
	Language       string // ISO 639-1 code, default "en"
	FrequencyRank  *int   // lower = more common
	PartsOfSpeech  []string

	Pronunciations []Pronunciation
	Definitions    []Definition
	WordForms      []WordForm

	CreatedAt time.Time
}

// Definition belongs to exactly one entry. Order is 1-based and restarts
// at 1 for each import batch; lookup responses sort ascending by it.
type Definition struct {
	ID           uuid.UUID
	EntryID      uuid.UUID
	PartOfSpeech string
	TextEN       string
	TextVI       string
	Level        Level
	Order        int
	Examples     []Example
	CreatedAt    time.Time
}

// Example is an English/Vietnamese sentence pair under a definition.
type Example struct {
	ID           uuid.UUID
	DefinitionID uuid.UUID
	TextEN       string
	TextVI       string
	Source       *string // optional provenance tag
}

// Pronunciation belongs to exactly one entry. At most one audio-bearing
// row exists per (entry, accent) pair.
type Pronunciation struct {
	ID       uuid.UUID
	EntryID  uuid.UUID
	Accent   string // free-form, "US"/"UK" canonical
	IPA      string
	AudioURL *string
}

// WordForm is a (form type, form word) pair, e.g. ("plural", "hellos").
// At most one row exists per (entry, form type).
type WordForm struct {
	ID       uuid.UUID
	EntryID  uuid.UUID
	FormType string
	FormWord string
}

// WordFormsMap folds the word form list into a form-type-to-word map.
func (e *Entry) WordFormsMap() map[string]string {
	if len(e.WordForms) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.WordForms))
	for _, f := range e.WordForms {
		m[f.FormType] = f.FormWord
	}
	return m
}
