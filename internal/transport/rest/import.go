package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tdhoang/vocadict-backend/internal/service/importer"
)

// importService defines the minimal interface needed by ImportHandler.
type importService interface {
	Import(ctx context.Context, in importer.Input) (importer.Result, error)
}

// ImportHandler serves the admin bulk-import endpoint.
type ImportHandler struct {
	svc importService
	log *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, log: logger.With("handler", "import")}
}

// Import handles POST /api/admin/import with one entry payload per request.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var in importer.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Import(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
