package entry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdhoang/vocadict-backend/internal/adapter/postgres/entry"
	"github.com/tdhoang/vocadict-backend/internal/adapter/postgres/testhelper"
	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*entry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return entry.New(pool), pool
}

func uniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// ---------------------------------------------------------------------------
// GetFullTreeByWord tests
// ---------------------------------------------------------------------------

func TestRepo_GetFullTreeByWord_LiteralAndNormalized(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("Tree")
	seeded := testhelper.SeedEntry(t, pool, word)

	// Exact stored word.
	byLiteral, err := repo.GetFullTreeByWord(ctx, seeded.Word, "nope")
	if err != nil {
		t.Fatalf("GetFullTreeByWord literal: %v", err)
	}
	if byLiteral.ID != seeded.ID {
		t.Errorf("literal lookup: got entry %s, want %s", byLiteral.ID, seeded.ID)
	}

	// Normalized key only.
	byNormalized, err := repo.GetFullTreeByWord(ctx, "nope", seeded.WordNormalized)
	if err != nil {
		t.Fatalf("GetFullTreeByWord normalized: %v", err)
	}
	if byNormalized.ID != seeded.ID {
		t.Errorf("normalized lookup: got entry %s, want %s", byNormalized.ID, seeded.ID)
	}

	// Full tree is loaded.
	if len(byLiteral.Pronunciations) != 2 {
		t.Errorf("expected 2 pronunciations, got %d", len(byLiteral.Pronunciations))
	}
	if len(byLiteral.Definitions) != 2 {
		t.Errorf("expected 2 definitions, got %d", len(byLiteral.Definitions))
	}
	for i, d := range byLiteral.Definitions {
		if d.Order != i+1 {
			t.Errorf("definition %d: expected order %d, got %d", i, i+1, d.Order)
		}
		if len(d.Examples) != 1 {
			t.Errorf("definition %d: expected 1 example, got %d", i, len(d.Examples))
		}
	}
	if len(byLiteral.WordForms) != 2 {
		t.Errorf("expected 2 word forms, got %d", len(byLiteral.WordForms))
	}
	if byLiteral.FrequencyRank == nil || *byLiteral.FrequencyRank != 100 {
		t.Errorf("expected frequency rank 100, got %v", byLiteral.FrequencyRank)
	}
}

func TestRepo_GetFullTreeByWord_Miss(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetFullTreeByWord(context.Background(), uniqueWord("missing"), uniqueWord("missing"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_GetSynonyms(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, uniqueWord("syn"))

	synonyms, err := repo.GetSynonyms(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetSynonyms: %v", err)
	}
	if len(synonyms) != 2 {
		t.Fatalf("expected 2 synonyms, got %d", len(synonyms))
	}
}

// ---------------------------------------------------------------------------
// Guarded write tests
// ---------------------------------------------------------------------------

func TestRepo_CreateIfAbsent_ConflictReturnsExisting(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("create")
	first := &domain.Entry{
		ID:             uuid.New(),
		Word:           word,
		WordNormalized: domain.NormalizeWord(word),
		Language:       domain.DefaultLanguage,
	}

	id, created, err := repo.CreateIfAbsent(ctx, first)
	if err != nil {
		t.Fatalf("CreateIfAbsent first: %v", err)
	}
	if !created || id != first.ID {
		t.Fatalf("first insert: expected created=true with new ID, got created=%v id=%s", created, id)
	}

	// Same normalized key, different casing.
	second := &domain.Entry{
		ID:             uuid.New(),
		Word:           "  " + word + "  ",
		WordNormalized: domain.NormalizeWord(word),
		Language:       domain.DefaultLanguage,
	}

	id2, created2, err := repo.CreateIfAbsent(ctx, second)
	if err != nil {
		t.Fatalf("CreateIfAbsent second: %v", err)
	}
	if created2 {
		t.Error("second insert: expected created=false")
	}
	if id2 != first.ID {
		t.Errorf("second insert: expected existing ID %s, got %s", first.ID, id2)
	}
}

func TestRepo_InsertPronunciationIfAbsent_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, uniqueWord("pron"))

	// (entry, US) already seeded.
	inserted, err := repo.InsertPronunciationIfAbsent(ctx, domain.Pronunciation{
		ID:      uuid.New(),
		EntryID: seeded.ID,
		Accent:  domain.AccentUS,
		IPA:     "/other/",
	})
	if err != nil {
		t.Fatalf("InsertPronunciationIfAbsent: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for duplicate accent")
	}

	var count int
	err = pool.QueryRow(ctx,
		`SELECT count(*) FROM pronunciations WHERE entry_id = $1 AND accent = $2`,
		seeded.ID, domain.AccentUS,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count pronunciations: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 pronunciation row, got %d", count)
	}

	// The seeded row kept its original IPA.
	var ipa string
	err = pool.QueryRow(ctx,
		`SELECT ipa FROM pronunciations WHERE entry_id = $1 AND accent = $2`,
		seeded.ID, domain.AccentUS,
	).Scan(&ipa)
	if err != nil {
		t.Fatalf("select ipa: %v", err)
	}
	if ipa == "/other/" {
		t.Error("duplicate insert must not overwrite the existing row")
	}
}

func TestRepo_InsertDefinitionBatch_Appends(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, uniqueWord("defs"))

	batch := []domain.Definition{
		{
			ID:      uuid.New(),
			EntryID: seeded.ID,
			TextEN:  "appended definition",
			Level:   domain.LevelIntermediate,
			Order:   1,
			Examples: []domain.Example{
				{ID: uuid.New(), TextEN: "appended example"},
			},
		},
	}
	batch[0].Examples[0].DefinitionID = batch[0].ID

	if err := repo.InsertDefinitionBatch(ctx, batch); err != nil {
		t.Fatalf("InsertDefinitionBatch: %v", err)
	}

	got, err := repo.GetFullTreeByWord(ctx, seeded.Word, seeded.WordNormalized)
	if err != nil {
		t.Fatalf("GetFullTreeByWord: %v", err)
	}

	// 2 seeded + 1 appended; the new batch restarts at order 1.
	if len(got.Definitions) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(got.Definitions))
	}
	orders := make(map[int]int)
	for _, d := range got.Definitions {
		orders[d.Order]++
	}
	if orders[1] != 2 {
		t.Errorf("expected two definitions with order 1, got %d", orders[1])
	}
}

func TestRepo_InsertWordFormIfAbsent_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, uniqueWord("form"))

	inserted, err := repo.InsertWordFormIfAbsent(ctx, domain.WordForm{
		ID:       uuid.New(),
		EntryID:  seeded.ID,
		FormType: "plural",
		FormWord: "something-else",
	})
	if err != nil {
		t.Fatalf("InsertWordFormIfAbsent: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for duplicate form type")
	}
}

func TestRepo_InsertSynonymIfAbsent_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("dup")
	seeded := testhelper.SeedEntry(t, pool, word)

	inserted, err := repo.InsertSynonymIfAbsent(ctx, seeded.ID, word+"-syn-a")
	if err != nil {
		t.Fatalf("InsertSynonymIfAbsent: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for duplicate synonym")
	}
}

// ---------------------------------------------------------------------------
// Audio backfill tests
// ---------------------------------------------------------------------------

func TestRepo_UpdatePronunciationAudio_OnlyWhenMissing(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, uniqueWord("audio"))

	var withAudio, withoutAudio domain.Pronunciation
	for _, p := range seeded.Pronunciations {
		if p.AudioURL != nil {
			withAudio = p
		} else {
			withoutAudio = p
		}
	}

	// Backfill fills the empty row.
	if err := repo.UpdatePronunciationAudio(ctx, withoutAudio.ID, "https://example.com/new.mp3"); err != nil {
		t.Fatalf("UpdatePronunciationAudio: %v", err)
	}

	var url *string
	if err := pool.QueryRow(ctx, `SELECT audio_url FROM pronunciations WHERE id = $1`, withoutAudio.ID).Scan(&url); err != nil {
		t.Fatalf("select audio_url: %v", err)
	}
	if url == nil || *url != "https://example.com/new.mp3" {
		t.Errorf("expected backfilled URL, got %v", url)
	}

	// Backfill never overwrites an existing URL.
	if err := repo.UpdatePronunciationAudio(ctx, withAudio.ID, "https://example.com/overwrite.mp3"); err != nil {
		t.Fatalf("UpdatePronunciationAudio existing: %v", err)
	}

	if err := pool.QueryRow(ctx, `SELECT audio_url FROM pronunciations WHERE id = $1`, withAudio.ID).Scan(&url); err != nil {
		t.Fatalf("select audio_url: %v", err)
	}
	if url == nil || *url != *withAudio.AudioURL {
		t.Errorf("expected original URL %q kept, got %v", *withAudio.AudioURL, url)
	}
}

// ---------------------------------------------------------------------------
// SearchByPrefix tests
// ---------------------------------------------------------------------------

func TestRepo_SearchByPrefix(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	prefix := "srch" + uuid.New().String()[:8]
	first := testhelper.SeedEntry(t, pool, prefix+"-alpha")
	second := testhelper.SeedEntry(t, pool, prefix+"-beta")

	// Give the second word a better rank so it sorts first.
	if _, err := pool.Exec(ctx, `UPDATE entries SET frequency_rank = 1 WHERE id = $1`, second.ID); err != nil {
		t.Fatalf("update rank: %v", err)
	}

	words, err := repo.SearchByPrefix(ctx, prefix, 10)
	if err != nil {
		t.Fatalf("SearchByPrefix: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %v", len(words), words)
	}
	if words[0] != second.Word || words[1] != first.Word {
		t.Errorf("expected rank ordering [%s %s], got %v", second.Word, first.Word, words)
	}
}

func TestRepo_SearchByPrefix_EscapesLikeMeta(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	// A bare % would otherwise match every row.
	words, err := repo.SearchByPrefix(context.Background(), "%", 10)
	if err != nil {
		t.Fatalf("SearchByPrefix: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no matches for literal %%, got %v", words)
	}
}
