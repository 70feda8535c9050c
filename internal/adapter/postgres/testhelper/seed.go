package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry creates an entry with 2 pronunciations (US with audio, UK
// without), 2 definitions (each with one example), 2 word forms, and 2
// synonyms. Returns the fully populated domain.Entry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, word string) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rank := 100

	entry := domain.Entry{
		ID:             uuid.New(),
		Word:           word,
		WordNormalized: domain.NormalizeWord(word),
		Language:       domain.DefaultLanguage,
		FrequencyRank:  &rank,
		PartsOfSpeech:  []string{"noun", "verb"},
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, word, word_normalized, language, frequency_rank, parts_of_speech, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Word, entry.WordNormalized, entry.Language, entry.FrequencyRank, entry.PartsOfSpeech, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	// US pronunciation carries audio, UK does not.
	usAudio := "https://example.com/audio/" + suffix + "-us.mp3"
	pronConfigs := []struct {
		accent string
		audio  *string
	}{
		{accent: domain.AccentUS, audio: &usAudio},
		{accent: domain.AccentUK, audio: nil},
	}

	entry.Pronunciations = make([]domain.Pronunciation, len(pronConfigs))
	for i, cfg := range pronConfigs {
		pron := domain.Pronunciation{
			ID:       uuid.New(),
			EntryID:  entry.ID,
			Accent:   cfg.accent,
			IPA:      "/" + word + "-" + cfg.accent + "/",
			AudioURL: cfg.audio,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO pronunciations (id, entry_id, accent, ipa, audio_url)
			 VALUES ($1, $2, $3, $4, $5)`,
			pron.ID, pron.EntryID, pron.Accent, pron.IPA, pron.AudioURL,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry insert pronunciation[%d]: %v", i, err)
		}
		entry.Pronunciations[i] = pron
	}

	defConfigs := []struct {
		pos   string
		level domain.Level
	}{
		{pos: "noun", level: domain.LevelBeginner},
		{pos: "verb", level: domain.LevelAdvanced},
	}

	entry.Definitions = make([]domain.Definition, len(defConfigs))
	for i, cfg := range defConfigs {
		def := domain.Definition{
			ID:           uuid.New(),
			EntryID:      entry.ID,
			PartOfSpeech: cfg.pos,
			TextEN:       "Definition " + suffix + "-" + string(rune('A'+i)),
			TextVI:       "Nghĩa " + suffix + "-" + string(rune('A'+i)),
			Level:        cfg.level,
			Order:        i + 1,
			CreatedAt:    now,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO definitions (id, entry_id, part_of_speech, text_en, text_vi, level, ord, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			def.ID, def.EntryID, def.PartOfSpeech, def.TextEN, def.TextVI, def.Level, def.Order, def.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry insert definition[%d]: %v", i, err)
		}

		ex := domain.Example{
			ID:           uuid.New(),
			DefinitionID: def.ID,
			TextEN:       "Example " + suffix + "-" + string(rune('A'+i)),
			TextVI:       "Ví dụ " + suffix + "-" + string(rune('A'+i)),
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO examples (id, definition_id, text_en, text_vi, source)
			 VALUES ($1, $2, $3, $4, $5)`,
			ex.ID, ex.DefinitionID, ex.TextEN, ex.TextVI, ex.Source,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry insert example[%d]: %v", i, err)
		}
		def.Examples = []domain.Example{ex}

		entry.Definitions[i] = def
	}

	formConfigs := []struct {
		formType string
		formWord string
	}{
		{formType: "plural", formWord: word + "s"},
		{formType: "past", formWord: word + "ed"},
	}

	entry.WordForms = make([]domain.WordForm, len(formConfigs))
	for i, cfg := range formConfigs {
		form := domain.WordForm{
			ID:       uuid.New(),
			EntryID:  entry.ID,
			FormType: cfg.formType,
			FormWord: cfg.formWord,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO word_forms (id, entry_id, form_type, form_word)
			 VALUES ($1, $2, $3, $4)`,
			form.ID, form.EntryID, form.FormType, form.FormWord,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry insert word_form[%d]: %v", i, err)
		}
		entry.WordForms[i] = form
	}

	for i, syn := range []string{word + "-syn-a", word + "-syn-b"} {
		_, err := pool.Exec(ctx,
			`INSERT INTO synonyms (id, entry_id, synonym_word) VALUES ($1, $2, $3)`,
			uuid.New(), entry.ID, syn,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry insert synonym[%d]: %v", i, err)
		}
	}

	return entry
}
