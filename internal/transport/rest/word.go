package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tdhoang/vocadict-backend/internal/service/lookup"
)

// lookupService defines the minimal interface needed by WordHandler.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// WordHandler serves dictionary lookup and autocomplete endpoints.
type WordHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc lookupService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type searchResponse struct {
	Words []string `json:"words"`
}

// Get handles GET /api/words/{word}. A word missing from the store is
// answered with a generated entry, not a 404.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	result, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Search handles GET /api/search?q=&limit=.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	words, err := h.svc.Search(r.Context(), query, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Words: words})
}
