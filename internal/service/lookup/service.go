// Package lookup implements the word lookup orchestration: consult the
// entry store, enrich missing pronunciation audio on a hit, and fall back
// to the generative client on a miss.
package lookup

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tdhoang/vocadict-backend/internal/domain"
	"github.com/tdhoang/vocadict-backend/internal/provider"
)

type entryRepo interface {
	GetFullTreeByWord(ctx context.Context, word, normalized string) (*domain.Entry, error)
	GetSynonyms(ctx context.Context, entryID uuid.UUID) ([]string, error)
	UpdatePronunciationAudio(ctx context.Context, pronunciationID uuid.UUID, audioURL string) error
	SearchByPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

type audioProvider interface {
	FetchAudio(ctx context.Context, word string) provider.AudioResult
}

type entryGenerator interface {
	GenerateEntry(ctx context.Context, word string) (*provider.GeneratedEntry, error)
}

// Service implements dictionary lookup and autocomplete.
type Service struct {
	log         *slog.Logger
	entries     entryRepo
	audio       audioProvider
	generator   entryGenerator
	searchLimit int
}

// NewService creates a lookup service. searchLimit caps autocomplete
// result sizes.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	audio audioProvider,
	generator entryGenerator,
	searchLimit int,
) *Service {
	if searchLimit <= 0 {
		searchLimit = 20
	}
	return &Service{
		log:         logger.With("service", "lookup"),
		entries:     entries,
		audio:       audio,
		generator:   generator,
		searchLimit: searchLimit,
	}
}
