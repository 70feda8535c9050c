package rest

import (
	"log/slog"
	"net/http"

	"github.com/tdhoang/vocadict-backend/internal/config"
	"github.com/tdhoang/vocadict-backend/internal/transport/middleware"
)

// Handlers groups the handler sets the router mounts.
type Handlers struct {
	Word      *WordHandler
	Translate *TranslateHandler
	Import    *ImportHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP handler tree with the global middleware chain
// applied: RequestID, then Logger, Recovery, and CORS.
func NewRouter(cfg config.CORSConfig, logger *slog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/words/{word}", h.Word.Get)
	mux.HandleFunc("GET /api/search", h.Word.Search)
	mux.HandleFunc("POST /api/translate", h.Translate.Translate)
	mux.HandleFunc("POST /api/admin/import", h.Import.Import)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
	)

	return chain(mux)
}
