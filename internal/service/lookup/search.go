package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// fallbackWords answers autocomplete when the store yields nothing, so a
// freshly provisioned instance is not completely mute.
var fallbackWords = []string{
	"about", "after", "again", "because", "before", "between",
	"could", "different", "every", "first", "great", "hello",
	"house", "important", "large", "learn", "little", "other",
	"people", "place", "right", "small", "sound", "spell",
	"their", "there", "thing", "think", "through", "water",
	"where", "which", "world", "would", "write", "years",
}

// Search returns stored words whose normalized form starts with the query,
// falling back to a small static word list when the store has no match.
// An empty query returns an empty result. The limit is clamped to
// [1, searchLimit], defaulting to searchLimit.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]string, error) {
	prefix := domain.NormalizeWord(query)
	if prefix == "" {
		return []string{}, nil
	}

	if limit <= 0 || limit > s.searchLimit {
		limit = s.searchLimit
	}

	words, err := s.entries.SearchByPrefix(ctx, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", prefix, err)
	}
	if len(words) > 0 {
		return words, nil
	}

	matches := []string{}
	for _, w := range fallbackWords {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}
