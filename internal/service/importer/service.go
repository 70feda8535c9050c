// Package importer idempotently folds externally sourced dictionary
// entries into the entry store. Pronunciations, word forms, and synonyms
// are upsert-guarded. Definitions are always appended: the source data
// carries its own batch numbering, so re-importing the same payload
// duplicates its definitions.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tdhoang/vocadict-backend/internal/domain"
)

type entryRepo interface {
	CreateIfAbsent(ctx context.Context, e *domain.Entry) (uuid.UUID, bool, error)
	InsertPronunciationIfAbsent(ctx context.Context, p domain.Pronunciation) (bool, error)
	InsertDefinitionBatch(ctx context.Context, defs []domain.Definition) error
	InsertWordFormIfAbsent(ctx context.Context, f domain.WordForm) (bool, error)
	InsertSynonymIfAbsent(ctx context.Context, entryID uuid.UUID, word string) (bool, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the import merger.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	tx      txRunner
}

// NewService creates an importer service. tx may be nil; definition batches
// then run without a transaction.
func NewService(logger *slog.Logger, entries entryRepo, tx txRunner) *Service {
	return &Service{
		log:     logger.With("service", "importer"),
		entries: entries,
		tx:      tx,
	}
}

// Import folds one entry into the store. The sequence runs without a
// surrounding transaction: a failure midway leaves earlier writes
// committed and surfaces as domain.ErrImportPartial naming the word.
func (s *Service) Import(ctx context.Context, in Input) (Result, error) {
	if in.Word == "" {
		return Result{}, domain.NewValidationError("word", "required")
	}

	entryID, err := s.mergeEntry(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("import %q: %w", in.Word, err)
	}

	if err := s.mergeChildren(ctx, entryID, in); err != nil {
		s.log.ErrorContext(ctx, "import failed after entry committed",
			slog.String("word", in.Word),
			slog.String("error", err.Error()),
		)
		return Result{}, fmt.Errorf("import %q: %s: %w", in.Word, err, domain.ErrImportPartial)
	}

	s.log.InfoContext(ctx, "entry imported", slog.String("word", in.Word))
	return Result{Success: true, Word: in.Word}, nil
}

// mergeEntry creates the entry row if absent and returns the ID of the row
// holding the word. Existing rows are reused with no field overwritten.
func (s *Service) mergeEntry(ctx context.Context, in Input) (uuid.UUID, error) {
	normalized := in.WordNormalized
	if normalized == "" {
		normalized = domain.NormalizeWord(in.Word)
	}
	language := in.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	entry := &domain.Entry{
		ID:             uuid.New(),
		Word:           in.Word,
		WordNormalized: normalized,
		Language:       language,
		FrequencyRank:  in.FrequencyRank,
		PartsOfSpeech:  distinctPOS(in.Definitions),
	}

	id, created, err := s.entries.CreateIfAbsent(ctx, entry)
	if err != nil {
		return uuid.Nil, err
	}
	if !created {
		s.log.DebugContext(ctx, "entry already present, reusing", slog.String("word", in.Word))
	}
	return id, nil
}

// mergeChildren inserts the child records: guarded pronunciations, word
// forms, and synonyms; appended definitions with their examples.
func (s *Service) mergeChildren(ctx context.Context, entryID uuid.UUID, in Input) error {
	for _, p := range in.Pronunciations {
		_, err := s.entries.InsertPronunciationIfAbsent(ctx, domain.Pronunciation{
			ID:       uuid.New(),
			EntryID:  entryID,
			Accent:   p.Accent,
			IPA:      p.IPA,
			AudioURL: p.AudioURL,
		})
		if err != nil {
			return fmt.Errorf("pronunciation %s: %w", p.Accent, err)
		}
	}

	// A definition batch commits atomically with its examples. The steps
	// around it stay independent: they are individually upsert-guarded.
	if len(in.Definitions) > 0 {
		defs := buildDefinitions(entryID, in.Definitions)
		insert := func(ctx context.Context) error {
			return s.entries.InsertDefinitionBatch(ctx, defs)
		}

		var err error
		if s.tx != nil {
			err = s.tx.RunInTx(ctx, insert)
		} else {
			err = insert(ctx)
		}
		if err != nil {
			return fmt.Errorf("definitions: %w", err)
		}
	}

	for formType, formWord := range in.WordForms {
		_, err := s.entries.InsertWordFormIfAbsent(ctx, domain.WordForm{
			ID:       uuid.New(),
			EntryID:  entryID,
			FormType: formType,
			FormWord: formWord,
		})
		if err != nil {
			return fmt.Errorf("word form %s: %w", formType, err)
		}
	}

	for _, syn := range in.Synonyms {
		if _, err := s.entries.InsertSynonymIfAbsent(ctx, entryID, syn); err != nil {
			return fmt.Errorf("synonym %s: %w", syn, err)
		}
	}

	return nil
}

// buildDefinitions numbers this call's definitions sequentially from 1,
// not continuing from rows already in the store.
func buildDefinitions(entryID uuid.UUID, inputs []DefinitionInput) []domain.Definition {
	defs := make([]domain.Definition, 0, len(inputs))
	for i, d := range inputs {
		def := domain.Definition{
			ID:           uuid.New(),
			EntryID:      entryID,
			PartOfSpeech: d.POS,
			TextEN:       d.DefinitionEN,
			TextVI:       d.DefinitionVI,
			Level:        domain.Level(d.Level).OrDefault(),
			Order:        i + 1,
		}
		for _, ex := range d.Examples {
			def.Examples = append(def.Examples, domain.Example{
				ID:           uuid.New(),
				DefinitionID: def.ID,
				TextEN:       ex.EN,
				TextVI:       ex.VI,
				Source:       ex.Source,
			})
		}
		defs = append(defs, def)
	}
	return defs
}

// distinctPOS collects the distinct part-of-speech tags across the
// definitions, preserving first-seen order.
func distinctPOS(defs []DefinitionInput) []string {
	seen := make(map[string]bool, len(defs))
	var tags []string
	for _, d := range defs {
		if d.POS == "" || seen[d.POS] {
			continue
		}
		seen[d.POS] = true
		tags = append(tags, d.POS)
	}
	return tags
}
