package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdhoang/vocadict-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps domain errors onto HTTP statuses. A store miss never
// reaches here on the lookup path (it falls through to generation), so
// ErrNotFound still maps to 404 for the callers that surface it.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrGenerationUnparsable):
		log.ErrorContext(r.Context(), "generation unparsable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "generation produced no usable entry")
	case errors.Is(err, domain.ErrUpstreamTimeout):
		log.ErrorContext(r.Context(), "upstream timeout", slog.String("error", err.Error()))
		writeError(w, http.StatusGatewayTimeout, "upstream timeout")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
