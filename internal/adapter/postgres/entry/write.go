package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/tdhoang/vocadict-backend/internal/adapter/postgres"
	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Raw SQL for write queries. All guarded inserts use ON CONFLICT DO NOTHING
// keyed on the natural-key unique constraint, so concurrent writers cannot
// create duplicates even when their existence checks race.
// ---------------------------------------------------------------------------

const insertEntrySQL = `
INSERT INTO entries (id, word, word_normalized, language, frequency_rank, parts_of_speech)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (word_normalized) DO NOTHING`

const insertPronunciationSQL = `
INSERT INTO pronunciations (id, entry_id, accent, ipa, audio_url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (entry_id, accent) DO NOTHING`

const insertDefinitionSQL = `
INSERT INTO definitions (id, entry_id, part_of_speech, text_en, text_vi, level, ord)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertExampleSQL = `
INSERT INTO examples (id, definition_id, text_en, text_vi, source)
VALUES ($1, $2, $3, $4, $5)`

const insertWordFormSQL = `
INSERT INTO word_forms (id, entry_id, form_type, form_word)
VALUES ($1, $2, $3, $4)
ON CONFLICT (entry_id, form_type) DO NOTHING`

const insertSynonymSQL = `
INSERT INTO synonyms (id, entry_id, synonym_word)
VALUES ($1, $2, $3)
ON CONFLICT (entry_id, synonym_word) DO NOTHING`

const updatePronunciationAudioSQL = `
UPDATE pronunciations
SET audio_url = $2
WHERE id = $1 AND audio_url IS NULL`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateIfAbsent inserts the entry unless one with the same normalized key
// already exists. Returns the ID of the row now holding the word (the new
// one or the pre-existing one) and whether an insert happened.
func (r *Repo) CreateIfAbsent(ctx context.Context, e *domain.Entry) (uuid.UUID, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, insertEntrySQL,
		e.ID, e.Word, e.WordNormalized, e.Language, e.FrequencyRank, e.PartsOfSpeech)
	if err != nil {
		return uuid.Nil, false, postgres.MapError(err, "entry", e.Word)
	}

	if tag.RowsAffected() == 1 {
		return e.ID, true, nil
	}

	// Lost the conflict: another row owns the key. Fetch it.
	id, err := r.GetIDByWord(ctx, e.Word, e.WordNormalized)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("entry after conflict: %w", err)
	}
	return id, false, nil
}

// InsertPronunciationIfAbsent inserts a pronunciation unless the
// (entry, accent) pair is already taken. Existing rows are never updated.
// Reports whether a row was inserted.
func (r *Repo) InsertPronunciationIfAbsent(ctx context.Context, p domain.Pronunciation) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, insertPronunciationSQL,
		p.ID, p.EntryID, p.Accent, p.IPA, p.AudioURL)
	if err != nil {
		return false, postgres.MapError(err, "pronunciation", p.Accent)
	}
	return tag.RowsAffected() == 1, nil
}

// InsertDefinitionBatch appends definitions and their examples. Definitions
// are never deduplicated: every call adds a new batch, with the caller
// responsible for the 1-based order values.
func (r *Repo) InsertDefinitionBatch(ctx context.Context, defs []domain.Definition) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	for _, d := range defs {
		if _, err := querier.Exec(ctx, insertDefinitionSQL,
			d.ID, d.EntryID, d.PartOfSpeech, d.TextEN, d.TextVI, d.Level, d.Order); err != nil {
			return postgres.MapError(err, "definition", d.TextEN)
		}
		for _, ex := range d.Examples {
			if _, err := querier.Exec(ctx, insertExampleSQL,
				ex.ID, ex.DefinitionID, ex.TextEN, ex.TextVI, ex.Source); err != nil {
				return postgres.MapError(err, "example", ex.TextEN)
			}
		}
	}

	return nil
}

// InsertWordFormIfAbsent inserts a word form unless the (entry, form type)
// pair is already taken. Reports whether a row was inserted.
func (r *Repo) InsertWordFormIfAbsent(ctx context.Context, f domain.WordForm) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, insertWordFormSQL, f.ID, f.EntryID, f.FormType, f.FormWord)
	if err != nil {
		return false, postgres.MapError(err, "word_form", f.FormType)
	}
	return tag.RowsAffected() == 1, nil
}

// InsertSynonymIfAbsent inserts a synonym string unless the entry already
// has it. Reports whether a row was inserted.
func (r *Repo) InsertSynonymIfAbsent(ctx context.Context, entryID uuid.UUID, word string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, insertSynonymSQL, uuid.New(), entryID, word)
	if err != nil {
		return false, postgres.MapError(err, "synonym", word)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdatePronunciationAudio backfills the audio URL onto a pronunciation row
// that is still missing one. Rows that already carry audio are left alone,
// so a concurrent backfill of the same row is harmless.
func (r *Repo) UpdatePronunciationAudio(ctx context.Context, pronunciationID uuid.UUID, audioURL string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, updatePronunciationAudioSQL, pronunciationID, audioURL); err != nil {
		return postgres.MapError(err, "pronunciation", pronunciationID.String())
	}
	return nil
}
