package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tdhoang/vocadict-backend/internal/domain"
)

// translator defines the minimal interface needed by TranslateHandler.
type translator interface {
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)
}

// TranslateHandler serves the free-text translation endpoint.
type TranslateHandler struct {
	svc translator
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translator, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondError(w, r, h.log, domain.NewValidationError("text", "required"))
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = domain.DefaultLanguage
	}
	if req.TargetLang == "" {
		req.TargetLang = "vi"
	}

	translation, err := h.svc.Translate(r.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{Translation: translation})
}
