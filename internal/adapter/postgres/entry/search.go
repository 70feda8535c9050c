package entry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/tdhoang/vocadict-backend/internal/adapter/postgres"
)

// SearchByPrefix returns stored words whose normalized key starts with the
// given prefix, most frequent first. An empty prefix returns an empty result
// without touching the database.
func (r *Repo) SearchByPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}

	query, args, err := sq.Select("word").
		From("entries").
		Where(sq.Like{"word_normalized": escapeLike(prefix) + "%"}).
		OrderBy("frequency_rank ASC NULLS LAST", "word_normalized ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("search entries: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	return result, nil
}

// escapeLike neutralizes LIKE metacharacters in user input so a prefix
// containing % or _ matches literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
