package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tdhoang/vocadict-backend/internal/domain"
	"github.com/tdhoang/vocadict-backend/internal/provider"
)

// Lookup resolves a word to an assembled entry. A store hit is enriched
// with pronunciation audio and returned; a miss delegates to the generative
// client and the result is returned without being persisted, so an
// identical future lookup repeats the generative call.
func (s *Service) Lookup(ctx context.Context, word string) (*Result, error) {
	literal := strings.TrimSpace(word)
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	entry, err := s.entries.GetFullTreeByWord(ctx, literal, normalized)
	if err == nil {
		s.enrichAudio(ctx, entry)
		return s.assemble(ctx, entry)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup %q: %w", normalized, err)
	}

	generated, err := s.generator.GenerateEntry(ctx, normalized)
	if err != nil {
		s.log.ErrorContext(ctx, "generative fallback failed",
			slog.String("word", normalized),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("generate %q: %w", normalized, err)
	}

	s.log.InfoContext(ctx, "entry generated", slog.String("word", normalized))
	return fromGenerated(generated), nil
}

// enrichAudio backfills audio URLs onto pronunciations missing one. One
// resolver call is issued per missing pronunciation, all in parallel; each
// successful resolution is persisted independently so the external call is
// made at most once per word/accent. Failures degrade to "no audio".
func (s *Service) enrichAudio(ctx context.Context, entry *domain.Entry) {
	var missing []*domain.Pronunciation
	for i := range entry.Pronunciations {
		p := &entry.Pronunciations[i]
		if p.AudioURL == nil || *p.AudioURL == "" {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return
	}

	var g errgroup.Group
	for _, p := range missing {
		g.Go(func() error {
			found := s.audio.FetchAudio(ctx, entry.Word)
			url := found.Resolve(p.Accent)
			if url == "" {
				return nil
			}

			if err := s.entries.UpdatePronunciationAudio(ctx, p.ID, url); err != nil {
				// Best-effort: the response still carries the URL we found.
				s.log.WarnContext(ctx, "audio backfill write failed",
					slog.String("word", entry.Word),
					slog.String("accent", p.Accent),
					slog.String("error", err.Error()),
				)
			}
			p.AudioURL = &url
			return nil
		})
	}
	_ = g.Wait()
}

// assemble builds the response from a stored entry: definitions sorted by
// stored order, word forms folded into a map, synonyms attached only when
// non-empty.
func (s *Service) assemble(ctx context.Context, entry *domain.Entry) (*Result, error) {
	defs := make([]domain.Definition, len(entry.Definitions))
	copy(defs, entry.Definitions)
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Order < defs[j].Order })

	result := &Result{
		Word:           entry.Word,
		Pronunciations: make([]PronunciationItem, 0, len(entry.Pronunciations)),
		Definitions:    make([]DefinitionItem, 0, len(defs)),
		WordForms:      entry.WordFormsMap(),
		FrequencyRank:  entry.FrequencyRank,
	}

	for _, p := range entry.Pronunciations {
		result.Pronunciations = append(result.Pronunciations, PronunciationItem{
			Accent:   p.Accent,
			IPA:      p.IPA,
			AudioURL: p.AudioURL,
		})
	}

	for _, d := range defs {
		item := DefinitionItem{
			POS:          d.PartOfSpeech,
			DefinitionEN: d.TextEN,
			DefinitionVI: d.TextVI,
			Level:        string(d.Level.OrDefault()),
			Examples:     make([]ExampleItem, 0, len(d.Examples)),
		}
		for _, ex := range d.Examples {
			item.Examples = append(item.Examples, ExampleItem{EN: ex.TextEN, VI: ex.TextVI})
		}
		result.Definitions = append(result.Definitions, item)
	}

	synonyms, err := s.entries.GetSynonyms(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("synonyms for %q: %w", entry.Word, err)
	}
	if len(synonyms) > 0 {
		result.Synonyms = synonyms
	}

	return result, nil
}

// fromGenerated maps a generated entry onto the response shape verbatim.
func fromGenerated(g *provider.GeneratedEntry) *Result {
	result := &Result{
		Word:           g.Word,
		Pronunciations: make([]PronunciationItem, 0, len(g.Pronunciations)),
		Definitions:    make([]DefinitionItem, 0, len(g.Definitions)),
		WordForms:      g.WordForms,
		Synonyms:       g.Synonyms,
	}

	for _, p := range g.Pronunciations {
		result.Pronunciations = append(result.Pronunciations, PronunciationItem{
			Accent:   p.Accent,
			IPA:      p.IPA,
			AudioURL: p.AudioURL,
		})
	}

	for _, d := range g.Definitions {
		item := DefinitionItem{
			POS:          d.POS,
			DefinitionEN: d.DefinitionEN,
			DefinitionVI: d.DefinitionVI,
			Level:        string(domain.Level(d.Level).OrDefault()),
			Examples:     make([]ExampleItem, 0, len(d.Examples)),
		}
		for _, ex := range d.Examples {
			item.Examples = append(item.Examples, ExampleItem{EN: ex.EN, VI: ex.VI})
		}
		result.Definitions = append(result.Definitions, item)
	}

	return result
}
