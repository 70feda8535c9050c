// Package entry implements the dictionary Entry store using PostgreSQL.
// It manages 6 tables (entries + 5 child tables) as a single aggregate.
// Reads use raw SQL; guarded writes rely on ON CONFLICT DO NOTHING so the
// storage layer, not the application, enforces natural-key uniqueness.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tdhoang/vocadict-backend/internal/adapter/postgres"
	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// Repo provides dictionary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for read queries
// ---------------------------------------------------------------------------

const getByWordSQL = `
SELECT id, word, word_normalized, language, frequency_rank, parts_of_speech, created_at
FROM entries
WHERE word = $1 OR word_normalized = $2`

const getIDByWordSQL = `
SELECT id
FROM entries
WHERE word = $1 OR word_normalized = $2`

const getPronunciationsSQL = `
SELECT id, entry_id, accent, ipa, audio_url
FROM pronunciations
WHERE entry_id = $1
ORDER BY accent`

const getDefinitionsSQL = `
SELECT id, entry_id, part_of_speech, text_en, text_vi, level, ord, created_at
FROM definitions
WHERE entry_id = $1
ORDER BY ord`

const getExamplesSQL = `
SELECT ex.id, ex.definition_id, ex.text_en, ex.text_vi, ex.source
FROM examples ex
JOIN definitions d ON d.id = ex.definition_id
WHERE d.entry_id = $1
ORDER BY d.ord, ex.id`

const getWordFormsSQL = `
SELECT id, entry_id, form_type, form_word
FROM word_forms
WHERE entry_id = $1
ORDER BY form_type`

const getSynonymsSQL = `
SELECT synonym_word
FROM synonyms
WHERE entry_id = $1
ORDER BY synonym_word`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetFullTreeByWord returns the entry matching either the exact stored word
// or its normalized key, with the full nested graph (pronunciations,
// definitions with their examples, word forms) loaded in one logical read.
// Returns domain.ErrNotFound on miss; any other error is a storage failure.
func (r *Repo) GetFullTreeByWord(ctx context.Context, word, normalized string) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		e    domain.Entry
		rank pgtype.Int4
	)
	row := querier.QueryRow(ctx, getByWordSQL, word, normalized)
	if err := row.Scan(&e.ID, &e.Word, &e.WordNormalized, &e.Language, &rank, &e.PartsOfSpeech, &e.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "entry", word)
	}
	if rank.Valid {
		v := int(rank.Int32)
		e.FrequencyRank = &v
	}

	if err := r.loadFullTree(ctx, querier, &e); err != nil {
		return nil, postgres.MapError(err, "entry", word)
	}

	return &e, nil
}

// GetIDByWord returns the entry ID for the exact word or normalized key.
// Returns domain.ErrNotFound on miss.
func (r *Repo) GetIDByWord(ctx context.Context, word, normalized string) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	if err := querier.QueryRow(ctx, getIDByWordSQL, word, normalized).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "entry", word)
	}
	return id, nil
}

// GetSynonyms returns the synonym strings for an entry. This read is kept
// separate from the main tree fetch. Returns an empty slice when none exist.
func (r *Repo) GetSynonyms(ctx context.Context, entryID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getSynonymsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("get synonyms: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("get synonyms: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get synonyms: %w", err)
	}

	return result, nil
}

// loadFullTree loads pronunciations, definitions (with examples), and word
// forms into the entry.
func (r *Repo) loadFullTree(ctx context.Context, querier postgres.Querier, e *domain.Entry) error {
	prons, err := r.loadPronunciations(ctx, querier, e.ID)
	if err != nil {
		return err
	}
	e.Pronunciations = prons

	defs, err := r.loadDefinitions(ctx, querier, e.ID)
	if err != nil {
		return err
	}

	if err := r.attachExamples(ctx, querier, e.ID, defs); err != nil {
		return err
	}
	e.Definitions = defs

	forms, err := r.loadWordForms(ctx, querier, e.ID)
	if err != nil {
		return err
	}
	e.WordForms = forms

	return nil
}

func (r *Repo) loadPronunciations(ctx context.Context, querier postgres.Querier, entryID uuid.UUID) ([]domain.Pronunciation, error) {
	rows, err := querier.Query(ctx, getPronunciationsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("load pronunciations: %w", err)
	}
	defer rows.Close()

	result := []domain.Pronunciation{}
	for rows.Next() {
		var (
			p     domain.Pronunciation
			audio pgtype.Text
		)
		if err := rows.Scan(&p.ID, &p.EntryID, &p.Accent, &p.IPA, &audio); err != nil {
			return nil, fmt.Errorf("load pronunciations: %w", err)
		}
		if audio.Valid {
			p.AudioURL = &audio.String
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load pronunciations: %w", err)
	}

	return result, nil
}

func (r *Repo) loadDefinitions(ctx context.Context, querier postgres.Querier, entryID uuid.UUID) ([]domain.Definition, error) {
	rows, err := querier.Query(ctx, getDefinitionsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	defer rows.Close()

	result := []domain.Definition{}
	for rows.Next() {
		var d domain.Definition
		if err := rows.Scan(&d.ID, &d.EntryID, &d.PartOfSpeech, &d.TextEN, &d.TextVI, &d.Level, &d.Order, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("load definitions: %w", err)
		}
		d.Examples = []domain.Example{}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}

	return result, nil
}

// attachExamples loads all examples for the entry in one query and groups
// them onto their definitions.
func (r *Repo) attachExamples(ctx context.Context, querier postgres.Querier, entryID uuid.UUID, defs []domain.Definition) error {
	if len(defs) == 0 {
		return nil
	}

	rows, err := querier.Query(ctx, getExamplesSQL, entryID)
	if err != nil {
		return fmt.Errorf("load examples: %w", err)
	}
	defer rows.Close()

	byDef := make(map[uuid.UUID]*domain.Definition, len(defs))
	for i := range defs {
		byDef[defs[i].ID] = &defs[i]
	}

	for rows.Next() {
		var (
			ex     domain.Example
			source pgtype.Text
		)
		if err := rows.Scan(&ex.ID, &ex.DefinitionID, &ex.TextEN, &ex.TextVI, &source); err != nil {
			return fmt.Errorf("load examples: %w", err)
		}
		if source.Valid {
			ex.Source = &source.String
		}
		if d, ok := byDef[ex.DefinitionID]; ok {
			d.Examples = append(d.Examples, ex)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load examples: %w", err)
	}

	return nil
}

func (r *Repo) loadWordForms(ctx context.Context, querier postgres.Querier, entryID uuid.UUID) ([]domain.WordForm, error) {
	rows, err := querier.Query(ctx, getWordFormsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("load word forms: %w", err)
	}
	defer rows.Close()

	result := []domain.WordForm{}
	for rows.Next() {
		var f domain.WordForm
		if err := rows.Scan(&f.ID, &f.EntryID, &f.FormType, &f.FormWord); err != nil {
			return nil, fmt.Errorf("load word forms: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load word forms: %w", err)
	}

	return result, nil
}
